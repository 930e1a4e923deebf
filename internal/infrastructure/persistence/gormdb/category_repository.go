package gormdb

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := &CategoryModel{Name: category.Name, Slug: category.Slug}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	category.ID = model.ID
	return nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var model CategoryModel

	if err := getDB(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toCategoryEntity(&model), nil
}

// Delete desassocia as obras da categoria antes de removê-la (SET NULL)
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Model(&TitleModel{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&CategoryModel{}, id).Error
	})
}

func (r *CategoryRepository) List(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Category, int64, error) {
	var models []*CategoryModel

	query := getDB(ctx, r.db).Model(&CategoryModel{})
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

	categories := make([]*entities.Category, len(models))
	for i, m := range models {
		categories[i] = toCategoryEntity(m)
	}
	return categories, total, nil
}

func toCategoryEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{ID: model.ID, Name: model.Name, Slug: model.Slug}
}
