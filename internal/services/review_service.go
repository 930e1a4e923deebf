package services

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/policies"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
)

// ReviewService gerencia reviews de obras
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	titleRepo  repositories.TitleRepository
	scores     valueobjects.ScoreRange
	clock      ports.Clock
	logger     ports.Logger
}

// NewReviewService cria um novo ReviewService
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	titleRepo repositories.TitleRepository,
	scores valueobjects.ScoreRange,
	clock ports.Clock,
	logger ports.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
		scores:     scores,
		clock:      clock,
		logger:     logger,
	}
}

// ReviewInput representa texto e nota; campos nil ficam inalterados na edição
type ReviewInput struct {
	Text  *string
	Score *int
}

// ListReviews lista as reviews da obra, mais recentes primeiro
func (s *ReviewService) ListReviews(ctx context.Context, titleID uint, page repositories.Page) ([]*entities.Review, int64, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.List(ctx, titleID, page)
}

// GetReview busca a review dentro da obra
func (s *ReviewService) GetReview(ctx context.Context, titleID, reviewID uint) (*entities.Review, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.ErrReviewNotFound
	}
	return review, nil
}

// CreateReview publica a review do chamador; cada autor avalia uma obra uma única vez
func (s *ReviewService) CreateReview(ctx context.Context, caller *entities.User, titleID uint, input ReviewInput) (*entities.Review, error) {
	if caller == nil {
		return nil, errors.ErrUnauthorized
	}
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	v := &errors.ValidationError{}
	if input.Text == nil {
		v.Add(fieldText, errors.MsgRequired)
	}
	if input.Score == nil {
		v.Add(fieldScore, errors.MsgRequired)
	}

	review := &entities.Review{
		TitleID:        titleID,
		AuthorID:       caller.ID,
		AuthorUsername: caller.Username,
		PubDate:        s.clock.Now(),
	}
	if err := s.apply(review, input, v); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.IsUniqueViolation(err) {
			return nil, errors.NewValidationError(errors.NonFieldErrors, errors.MsgReviewExists)
		}
		return nil, err
	}

	s.logger.Info("review created", "title_id", titleID, "review_id", review.ID, "author", caller.Username)
	return review, nil
}

// UpdateReview edita a review; exige ser autor, moderador ou admin
func (s *ReviewService) UpdateReview(ctx context.Context, caller *entities.User, titleID, reviewID uint, input ReviewInput) (*entities.Review, error) {
	review, err := s.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := authorize(policies.ReadOpenWriteAuthor, caller, policies.ActionUpdate, review); err != nil {
		return nil, err
	}

	if err := s.apply(review, input, &errors.ValidationError{}); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review updated", "review_id", reviewID, "by", caller.Username)
	return review, nil
}

// DeleteReview remove a review e seus comentários
func (s *ReviewService) DeleteReview(ctx context.Context, caller *entities.User, titleID, reviewID uint) error {
	review, err := s.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if err := authorize(policies.ReadOpenWriteAuthor, caller, policies.ActionDelete, review); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		return err
	}

	s.logger.Info("review deleted", "review_id", reviewID, "by", caller.Username)
	return nil
}

func (s *ReviewService) apply(review *entities.Review, input ReviewInput, v *errors.ValidationError) error {
	if input.Text != nil {
		checkText(v, fieldText, *input.Text, 0)
		review.Text = *input.Text
	}
	if input.Score != nil {
		if !s.scores.Contains(*input.Score) {
			v.Add(fieldScore, errors.MsgScoreOutOfRange, map[string]interface{}{"Min": s.scores.Min, "Max": s.scores.Max})
		}
		review.Score = *input.Score
	}
	return v.Err()
}

func (s *ReviewService) requireTitle(ctx context.Context, titleID uint) error {
	title, err := s.titleRepo.FindByID(ctx, titleID)
	if err != nil {
		return err
	}
	if title == nil {
		return errors.ErrTitleNotFound
	}
	return nil
}
