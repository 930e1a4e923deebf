package repositories

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
)

// TitleRepository define a persistência de obras.
// As leituras sempre trazem categoria, gêneros e a nota média atual.
type TitleRepository interface {
	Create(ctx context.Context, title *entities.Title) error
	FindByID(ctx context.Context, id uint) (*entities.Title, error)
	Update(ctx context.Context, title *entities.Title) error
	// Delete remove a obra junto com suas reviews e comentários
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters TitleFilters) ([]*entities.Title, int64, error)
}

// TitleOrdering é um campo aceito no parâmetro ordering
type TitleOrdering struct {
	Field      string
	Descending bool
}

// Campos ordenáveis de obras
const (
	TitleOrderName     = "name"
	TitleOrderYear     = "year"
	TitleOrderCategory = "category"
	TitleOrderGenre    = "genre"
)

// TitleFilters contém filtros para listagem de obras
type TitleFilters struct {
	Genre    string
	Category string
	Year     *int
	Name     string
	Search   string
	Ordering []TitleOrdering
	Page     Page
}
