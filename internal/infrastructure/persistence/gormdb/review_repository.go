package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	model := &ReviewModel{
		TitleID:  review.TitleID,
		AuthorID: review.AuthorID,
		Text:     review.Text,
		Score:    review.Score,
		PubDate:  review.PubDate,
	}

	if err := getDB(ctx, r.db).Omit("Author").Create(model).Error; err != nil {
		return translateError(err)
	}

	review.ID = model.ID
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, titleID, reviewID uint) (*entities.Review, error) {
	var model ReviewModel

	err := getDB(ctx, r.db).Preload("Author").
		Where("id = ? AND title_id = ?", reviewID, titleID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toReviewEntity(&model), nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	return getDB(ctx, r.db).Model(&ReviewModel{ID: review.ID}).Updates(map[string]interface{}{
		"text":  review.Text,
		"score": review.Score,
	}).Error
}

// Delete remove a review e seus comentários
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ReviewModel{}, id).Error
	})
}

func (r *ReviewRepository) List(ctx context.Context, titleID uint, page repositories.Page) ([]*entities.Review, int64, error) {
	query := getDB(ctx, r.db).Model(&ReviewModel{}).Where("title_id = ?", titleID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []ReviewModel
	page = page.Normalize()
	err := query.Preload("Author").
		Order("pub_date DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	reviews := make([]*entities.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}
	return reviews, total, nil
}

func toReviewEntity(model *ReviewModel) *entities.Review {
	return &entities.Review{
		ID:             model.ID,
		TitleID:        model.TitleID,
		Text:           model.Text,
		AuthorID:       model.AuthorID,
		AuthorUsername: model.Author.Username,
		Score:          model.Score,
		PubDate:        model.PubDate,
	}
}
