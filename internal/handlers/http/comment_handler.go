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

// CommentHandler atende os comentários de uma review
type CommentHandler struct {
	commentService *services.CommentService
	logger         ports.Logger
}

// NewCommentHandler cria um novo CommentHandler
func NewCommentHandler(commentService *services.CommentService, logger ports.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

func commentPath(c *gin.Context) (titleID, reviewID, commentID uint, ok bool) {
	if titleID, reviewID, ok = reviewPath(c); !ok {
		return 0, 0, 0, false
	}
	if commentID, ok = pathID(c, "comment_id", domainerrors.ErrCommentNotFound); !ok {
		return 0, 0, 0, false
	}
	return titleID, reviewID, commentID, true
}

// ListComments lista os comentários da review
//
//	@Summary	Lista de comentários
//	@Tags		comments
//	@Produce	json
//	@Param		title_id	path		int	true	"ID da obra"
//	@Param		review_id	path		int	true	"ID da review"
//	@Param		page		query		int	false	"página"
//	@Success	200			{object}	dto.PageResponse[dto.CommentResponse]
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	titleID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}
	page := dto.ParsePageNumber(c)

	comments, total, err := h.commentService.ListComments(c.Request.Context(), titleID, reviewID, page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageNumberPage(c, page, total, dto.ToCommentResponses(comments)))
}

// GetComment retorna um comentário
//
//	@Summary	Detalhe de comentário
//	@Tags		comments
//	@Produce	json
//	@Param		title_id	path		int	true	"ID da obra"
//	@Param		review_id	path		int	true	"ID da review"
//	@Param		comment_id	path		int	true	"ID do comentário"
//	@Success	200			{object}	dto.CommentResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments/{comment_id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	titleID, reviewID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), titleID, reviewID, commentID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// CreateComment publica um comentário do chamador
//
//	@Summary	Criação de comentário
//	@Tags		comments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		int					true	"ID da obra"
//	@Param		review_id	path		int					true	"ID da review"
//	@Param		body		body		dto.CommentRequest	true	"texto"
//	@Success	201			{object}	dto.CommentResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	titleID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), middleware.CurrentUser(c), titleID, reviewID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// UpdateComment edita o comentário (autor, moderador ou admin)
//
//	@Summary	Edição de comentário
//	@Tags		comments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		int					true	"ID da obra"
//	@Param		review_id	path		int					true	"ID da review"
//	@Param		comment_id	path		int					true	"ID do comentário"
//	@Param		body		body		dto.CommentRequest	true	"texto"
//	@Success	200			{object}	dto.CommentResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments/{comment_id} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	titleID, reviewID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), middleware.CurrentUser(c), titleID, reviewID, commentID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// DeleteComment remove o comentário (autor, moderador ou admin)
//
//	@Summary	Remoção de comentário
//	@Tags		comments
//	@Security	BearerAuth
//	@Param		title_id	path	int	true	"ID da obra"
//	@Param		review_id	path	int	true	"ID da review"
//	@Param		comment_id	path	int	true	"ID do comentário"
//	@Success	204
//	@Router		/titles/{title_id}/reviews/{review_id}/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	titleID, reviewID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), middleware.CurrentUser(c), titleID, reviewID, commentID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
