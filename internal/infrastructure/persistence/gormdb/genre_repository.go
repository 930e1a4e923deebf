package gormdb

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// GenreRepository implementa repositories.GenreRepository
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository cria um novo GenreRepository
func NewGenreRepository(db *gorm.DB) repositories.GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) Create(ctx context.Context, genre *entities.Genre) error {
	model := &GenreModel{Name: genre.Name, Slug: genre.Slug}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	genre.ID = model.ID
	return nil
}

func (r *GenreRepository) FindBySlug(ctx context.Context, slug string) (*entities.Genre, error) {
	var model GenreModel

	if err := getDB(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	genre := toGenreEntity(&model)
	return &genre, nil
}

// FindBySlugs retorna os gêneros existentes entre os slugs informados
func (r *GenreRepository) FindBySlugs(ctx context.Context, slugs []string) ([]entities.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var models []GenreModel
	if err := getDB(ctx, r.db).Where("slug IN ?", slugs).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return toGenreEntities(models), nil
}

// Delete retira o gênero das obras antes de removê-lo
func (r *GenreRepository) Delete(ctx context.Context, id uint) error {
	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM title_genres WHERE genre_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&GenreModel{}, id).Error
	})
}

func (r *GenreRepository) List(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Genre, int64, error) {
	var models []GenreModel

	query := getDB(ctx, r.db).Model(&GenreModel{})
	if search := strings.TrimSpace(filters.Search); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", likePattern(search))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page.Normalize()
	if err := query.Order("name ASC").Order("id ASC").Limit(page.Limit).Offset(page.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	genres := make([]*entities.Genre, len(models))
	for i := range models {
		g := toGenreEntity(&models[i])
		genres[i] = &g
	}
	return genres, total, nil
}

func toGenreEntity(model *GenreModel) entities.Genre {
	return entities.Genre{ID: model.ID, Name: model.Name, Slug: model.Slug}
}

func toGenreEntities(models []GenreModel) []entities.Genre {
	genres := make([]entities.Genre, len(models))
	for i := range models {
		genres[i] = toGenreEntity(&models[i])
	}
	return genres
}
