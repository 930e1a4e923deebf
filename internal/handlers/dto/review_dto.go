package dto

import (
	"time"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// ReviewRequest cria ou edita parcialmente uma review
type ReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

func (r ReviewRequest) ToInput() services.ReviewInput {
	return services.ReviewInput{Text: r.Text, Score: r.Score}
}

// ReviewResponse representa uma review; author é o username
type ReviewResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func ToReviewResponse(review *entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID,
		Text:    review.Text,
		Author:  review.AuthorUsername,
		Score:   review.Score,
		PubDate: review.PubDate,
	}
}

func ToReviewResponses(reviews []*entities.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ToReviewResponse(review)
	}
	return responses
}

// CommentRequest cria ou edita um comentário
type CommentRequest struct {
	Text *string `json:"text"`
}

func (r CommentRequest) ToInput() services.CommentInput {
	return services.CommentInput{Text: r.Text}
}

// CommentResponse representa um comentário; author é o username
type CommentResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func ToCommentResponse(comment *entities.Comment) CommentResponse {
	return CommentResponse{
		ID:      comment.ID,
		Text:    comment.Text,
		Author:  comment.AuthorUsername,
		PubDate: comment.PubDate,
	}
}

func ToCommentResponses(comments []*entities.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = ToCommentResponse(comment)
	}
	return responses
}
