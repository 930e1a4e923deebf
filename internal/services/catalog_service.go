package services

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// CatalogService gerencia categorias e gêneros
type CatalogService struct {
	categoryRepo repositories.CategoryRepository
	genreRepo    repositories.GenreRepository
	logger       ports.Logger
}

// NewCatalogService cria um novo CatalogService
func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	genreRepo repositories.GenreRepository,
	logger ports.Logger,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		logger:       logger,
	}
}

// CatalogInput representa nome e slug de uma categoria ou gênero
type CatalogInput struct {
	Name string
	Slug string
}

func (in CatalogInput) validate() error {
	v := &errors.ValidationError{}
	checkText(v, fieldName, in.Name, entities.NameMaxLength)
	checkSlug(v, in.Slug)
	return v.Err()
}

func slugTaken(err error) error {
	if errors.IsUniqueViolation(err) {
		return errors.NewValidationError(fieldSlug, errors.MsgSlugTaken)
	}
	return err
}

// CreateCategory cria uma categoria com slug único
func (s *CatalogService) CreateCategory(ctx context.Context, input CatalogInput) (*entities.Category, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	category := &entities.Category{Name: input.Name, Slug: input.Slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, slugTaken(err)
	}

	s.logger.Info("category created", "slug", category.Slug)
	return category, nil
}

// DeleteCategory remove a categoria; as obras ficam sem categoria
func (s *CatalogService) DeleteCategory(ctx context.Context, slug string) error {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.ErrCategoryNotFound
	}

	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return err
	}

	s.logger.Info("category deleted", "slug", slug)
	return nil
}

// ListCategories lista categorias ordenadas por nome
func (s *CatalogService) ListCategories(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Category, int64, error) {
	return s.categoryRepo.List(ctx, filters)
}

// CreateGenre cria um gênero com slug único
func (s *CatalogService) CreateGenre(ctx context.Context, input CatalogInput) (*entities.Genre, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	genre := &entities.Genre{Name: input.Name, Slug: input.Slug}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, slugTaken(err)
	}

	s.logger.Info("genre created", "slug", genre.Slug)
	return genre, nil
}

// DeleteGenre remove o gênero e o retira das obras
func (s *CatalogService) DeleteGenre(ctx context.Context, slug string) error {
	genre, err := s.genreRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if genre == nil {
		return errors.ErrGenreNotFound
	}

	if err := s.genreRepo.Delete(ctx, genre.ID); err != nil {
		return err
	}

	s.logger.Info("genre deleted", "slug", slug)
	return nil
}

// ListGenres lista gêneros ordenados por nome
func (s *CatalogService) ListGenres(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Genre, int64, error) {
	return s.genreRepo.List(ctx, filters)
}
