package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// CommentRepository implementa repositories.CommentRepository
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository cria um novo CommentRepository
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	model := &CommentModel{
		ReviewID: comment.ReviewID,
		AuthorID: comment.AuthorID,
		Text:     comment.Text,
		PubDate:  comment.PubDate,
	}

	if err := getDB(ctx, r.db).Omit("Author").Create(model).Error; err != nil {
		return translateError(err)
	}

	comment.ID = model.ID
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, reviewID, commentID uint) (*entities.Comment, error) {
	var model CommentModel

	err := getDB(ctx, r.db).Preload("Author").
		Where("id = ? AND review_id = ?", commentID, reviewID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toCommentEntity(&model), nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *entities.Comment) error {
	return getDB(ctx, r.db).Model(&CommentModel{ID: comment.ID}).Update("text", comment.Text).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	return getDB(ctx, r.db).Delete(&CommentModel{}, id).Error
}

func (r *CommentRepository) List(ctx context.Context, reviewID uint, page repositories.Page) ([]*entities.Comment, int64, error) {
	query := getDB(ctx, r.db).Model(&CommentModel{}).Where("review_id = ?", reviewID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []CommentModel
	page = page.Normalize()
	err := query.Preload("Author").
		Order("pub_date DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*entities.Comment, len(models))
	for i := range models {
		comments[i] = toCommentEntity(&models[i])
	}
	return comments, total, nil
}

func toCommentEntity(model *CommentModel) *entities.Comment {
	return &entities.Comment{
		ID:             model.ID,
		ReviewID:       model.ReviewID,
		Text:           model.Text,
		AuthorID:       model.AuthorID,
		AuthorUsername: model.Author.Username,
		PubDate:        model.PubDate,
	}
}
