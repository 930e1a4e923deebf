package repositories

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
)

// ReviewRepository define a persistência de reviews
type ReviewRepository interface {
	// Create retorna ErrUniqueViolation quando o autor já avaliou a obra
	Create(ctx context.Context, review *entities.Review) error
	FindByID(ctx context.Context, titleID, reviewID uint) (*entities.Review, error)
	Update(ctx context.Context, review *entities.Review) error
	// Delete remove a review e seus comentários
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, titleID uint, page Page) ([]*entities.Review, int64, error)
}

// CommentRepository define a persistência de comentários
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	FindByID(ctx context.Context, reviewID, commentID uint) (*entities.Comment, error)
	Update(ctx context.Context, comment *entities.Comment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, reviewID uint, page Page) ([]*entities.Comment, int64, error)
}
