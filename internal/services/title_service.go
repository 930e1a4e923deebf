package services

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// TitleService gerencia obras
type TitleService struct {
	titleRepo    repositories.TitleRepository
	categoryRepo repositories.CategoryRepository
	genreRepo    repositories.GenreRepository
	clock        ports.Clock
	logger       ports.Logger
}

// NewTitleService cria um novo TitleService
func NewTitleService(
	titleRepo repositories.TitleRepository,
	categoryRepo repositories.CategoryRepository,
	genreRepo repositories.GenreRepository,
	clock ports.Clock,
	logger ports.Logger,
) *TitleService {
	return &TitleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		clock:        clock,
		logger:       logger,
	}
}

// TitleInput representa a escrita de uma obra; categoria e gêneros vêm por slug.
// Na edição parcial, campos nil ficam inalterados.
type TitleInput struct {
	Name        *string
	Year        *int
	Description *string
	// Category aponta para "" quando a obra deve ficar sem categoria
	Category *string
	Genres   *[]string
}

// CreateTitle cria uma obra; ano e ao menos um gênero são obrigatórios
func (s *TitleService) CreateTitle(ctx context.Context, input TitleInput) (*entities.Title, error) {
	title := &entities.Title{}

	v := &errors.ValidationError{}
	if input.Name == nil {
		v.Add(fieldName, errors.MsgRequired)
	}
	if input.Year == nil {
		v.Add(fieldYear, errors.MsgRequired)
	}
	if input.Genres == nil {
		v.Add(fieldGenre, errors.MsgGenreRequired)
	}

	if err := s.apply(ctx, title, input, v); err != nil {
		return nil, err
	}

	if err := s.titleRepo.Create(ctx, title); err != nil {
		return nil, err
	}

	s.logger.Info("title created", "title_id", title.ID)
	return s.GetTitle(ctx, title.ID)
}

// UpdateTitle aplica uma edição parcial
func (s *TitleService) UpdateTitle(ctx context.Context, id uint, input TitleInput) (*entities.Title, error) {
	title, err := s.GetTitle(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, title, input, &errors.ValidationError{}); err != nil {
		return nil, err
	}

	if err := s.titleRepo.Update(ctx, title); err != nil {
		return nil, err
	}

	s.logger.Info("title updated", "title_id", id)
	return s.GetTitle(ctx, id)
}

// GetTitle retorna a obra com categoria, gêneros e nota atual
func (s *TitleService) GetTitle(ctx context.Context, id uint) (*entities.Title, error) {
	title, err := s.titleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, errors.ErrTitleNotFound
	}
	return title, nil
}

// ListTitles lista obras com filtros, busca e ordenação
func (s *TitleService) ListTitles(ctx context.Context, filters repositories.TitleFilters) ([]*entities.Title, int64, error) {
	return s.titleRepo.List(ctx, filters)
}

// DeleteTitle remove a obra com suas reviews e comentários
func (s *TitleService) DeleteTitle(ctx context.Context, id uint) error {
	if _, err := s.GetTitle(ctx, id); err != nil {
		return err
	}

	if err := s.titleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("title deleted", "title_id", id)
	return nil
}

// apply valida os campos informados e os copia para a obra, resolvendo os slugs
func (s *TitleService) apply(ctx context.Context, title *entities.Title, input TitleInput, v *errors.ValidationError) error {
	if input.Name != nil {
		checkText(v, fieldName, *input.Name, entities.NameMaxLength)
		title.Name = *input.Name
	}

	if input.Year != nil {
		currentYear := s.clock.Now().Year()
		if *input.Year > currentYear {
			v.Add(fieldYear, errors.MsgYearInFuture, map[string]interface{}{"Year": currentYear})
		}
		title.Year = *input.Year
	}

	if input.Description != nil {
		title.Description = *input.Description
	}

	if input.Category != nil {
		category, err := s.resolveCategory(ctx, *input.Category, v)
		if err != nil {
			return err
		}
		title.Category = category
	}

	if input.Genres != nil {
		genres, err := s.resolveGenres(ctx, *input.Genres, v)
		if err != nil {
			return err
		}
		title.Genres = genres
	}

	return v.Err()
}

func (s *TitleService) resolveCategory(ctx context.Context, slug string, v *errors.ValidationError) (*entities.Category, error) {
	if slug == "" {
		return nil, nil
	}

	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		v.Add(fieldCategory, errors.MsgUnknownSlug, map[string]interface{}{"Slug": slug})
	}
	return category, nil
}

func (s *TitleService) resolveGenres(ctx context.Context, slugs []string, v *errors.ValidationError) ([]entities.Genre, error) {
	unique := make([]string, 0, len(slugs))
	seen := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		if !seen[slug] {
			seen[slug] = true
			unique = append(unique, slug)
		}
	}

	if len(unique) == 0 {
		v.Add(fieldGenre, errors.MsgGenreRequired)
		return nil, nil
	}

	genres, err := s.genreRepo.FindBySlugs(ctx, unique)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(genres))
	for _, g := range genres {
		found[g.Slug] = true
	}
	for _, slug := range unique {
		if !found[slug] {
			v.Add(fieldGenre, errors.MsgUnknownSlug, map[string]interface{}{"Slug": slug})
		}
	}
	return genres, nil
}
