package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
	"github.com/rafabene/yamdb-backend/internal/handlers/middleware"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// ReviewHandler atende as reviews aninhadas em /titles/{title_id}
type ReviewHandler struct {
	reviewService *services.ReviewService
	logger        ports.Logger
}

// NewReviewHandler cria um novo ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService, logger ports.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

func reviewPath(c *gin.Context) (titleID, reviewID uint, ok bool) {
	if titleID, ok = pathID(c, "title_id", domainerrors.ErrTitleNotFound); !ok {
		return 0, 0, false
	}
	if reviewID, ok = pathID(c, "review_id", domainerrors.ErrReviewNotFound); !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
}

// ListReviews lista as reviews da obra
//
//	@Summary	Lista de reviews
//	@Tags		reviews
//	@Produce	json
//	@Param		title_id	path		int	true	"ID da obra"
//	@Param		page		query		int	false	"página"
//	@Success	200			{object}	dto.PageResponse[dto.ReviewResponse]
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	titleID, ok := pathID(c, "title_id", domainerrors.ErrTitleNotFound)
	if !ok {
		return
	}
	page := dto.ParsePageNumber(c)

	reviews, total, err := h.reviewService.ListReviews(c.Request.Context(), titleID, page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageNumberPage(c, page, total, dto.ToReviewResponses(reviews)))
}

// GetReview retorna uma review da obra
//
//	@Summary	Detalhe de review
//	@Tags		reviews
//	@Produce	json
//	@Param		title_id	path		int	true	"ID da obra"
//	@Param		review_id	path		int	true	"ID da review"
//	@Success	200			{object}	dto.ReviewResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	titleID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), titleID, reviewID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// CreateReview publica a review do chamador; uma por obra
//
//	@Summary	Criação de review
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		int					true	"ID da obra"
//	@Param		body		body		dto.ReviewRequest	true	"texto e nota"
//	@Success	201			{object}	dto.ReviewResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	titleID, ok := pathID(c, "title_id", domainerrors.ErrTitleNotFound)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), middleware.CurrentUser(c), titleID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// UpdateReview edita a review (autor, moderador ou admin)
//
//	@Summary	Edição de review
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		int					true	"ID da obra"
//	@Param		review_id	path		int					true	"ID da review"
//	@Param		body		body		dto.ReviewRequest	true	"campos alterados"
//	@Success	200			{object}	dto.ReviewResponse
//	@Failure	403			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id} [patch]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	titleID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), middleware.CurrentUser(c), titleID, reviewID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// DeleteReview remove a review e seus comentários (autor, moderador ou admin)
//
//	@Summary	Remoção de review
//	@Tags		reviews
//	@Security	BearerAuth
//	@Param		title_id	path	int	true	"ID da obra"
//	@Param		review_id	path	int	true	"ID da review"
//	@Success	204
//	@Router		/titles/{title_id}/reviews/{review_id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	titleID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), middleware.CurrentUser(c), titleID, reviewID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
