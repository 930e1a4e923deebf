package repositories

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
)

// CatalogFilters contém filtros para listagem de categorias e gêneros
type CatalogFilters struct {
	Search string
	Page   Page
}

// CategoryRepository define a persistência de categorias
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindBySlug(ctx context.Context, slug string) (*entities.Category, error)
	// Delete remove a categoria e desassocia as obras que a usavam
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters CatalogFilters) ([]*entities.Category, int64, error)
}

// GenreRepository define a persistência de gêneros
type GenreRepository interface {
	Create(ctx context.Context, genre *entities.Genre) error
	FindBySlug(ctx context.Context, slug string) (*entities.Genre, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]entities.Genre, error)
	// Delete remove o gênero e o retira do conjunto de gêneros das obras
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters CatalogFilters) ([]*entities.Genre, int64, error)
}
