package services

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/policies"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// CommentService gerencia comentários de reviews
type CommentService struct {
	commentRepo repositories.CommentRepository
	reviews     *ReviewService
	clock       ports.Clock
	logger      ports.Logger
}

// NewCommentService cria um novo CommentService.
// A cadeia obra → review é resolvida pelo ReviewService.
func NewCommentService(
	commentRepo repositories.CommentRepository,
	reviews *ReviewService,
	clock ports.Clock,
	logger ports.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		reviews:     reviews,
		clock:       clock,
		logger:      logger,
	}
}

// CommentInput representa o texto de um comentário
type CommentInput struct {
	Text *string
}

// ListComments lista os comentários da review, mais recentes primeiro
func (s *CommentService) ListComments(ctx context.Context, titleID, reviewID uint, page repositories.Page) ([]*entities.Comment, int64, error) {
	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.commentRepo.List(ctx, reviewID, page)
}

// GetComment busca o comentário percorrendo obra e review
func (s *CommentService) GetComment(ctx context.Context, titleID, reviewID, commentID uint) (*entities.Comment, error) {
	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.ErrCommentNotFound
	}
	return comment, nil
}

// CreateComment publica um comentário do chamador
func (s *CommentService) CreateComment(ctx context.Context, caller *entities.User, titleID, reviewID uint, input CommentInput) (*entities.Comment, error) {
	if caller == nil {
		return nil, errors.ErrUnauthorized
	}
	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	v := &errors.ValidationError{}
	checkText(v, fieldText, derefString(input.Text), 0)
	if err := v.Err(); err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		ReviewID:       reviewID,
		Text:           *input.Text,
		AuthorID:       caller.ID,
		AuthorUsername: caller.Username,
		PubDate:        s.clock.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created", "review_id", reviewID, "comment_id", comment.ID, "author", caller.Username)
	return comment, nil
}

// UpdateComment edita o comentário; exige ser autor, moderador ou admin
func (s *CommentService) UpdateComment(ctx context.Context, caller *entities.User, titleID, reviewID, commentID uint, input CommentInput) (*entities.Comment, error) {
	comment, err := s.GetComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if err := authorize(policies.ReadOpenWriteAuthor, caller, policies.ActionUpdate, comment); err != nil {
		return nil, err
	}

	if input.Text != nil {
		v := &errors.ValidationError{}
		checkText(v, fieldText, *input.Text, 0)
		if err := v.Err(); err != nil {
			return nil, err
		}
		comment.Text = *input.Text
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment updated", "comment_id", commentID, "by", caller.Username)
	return comment, nil
}

// DeleteComment remove o comentário
func (s *CommentService) DeleteComment(ctx context.Context, caller *entities.User, titleID, reviewID, commentID uint) error {
	comment, err := s.GetComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if err := authorize(policies.ReadOpenWriteAuthor, caller, policies.ActionDelete, comment); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return err
	}

	s.logger.Info("comment deleted", "comment_id", commentID, "by", caller.Username)
	return nil
}
