package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
	"github.com/rafabene/yamdb-backend/internal/handlers/middleware"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser cria um usuário (admin)
//
//	@Summary	Criação de usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.CreateUserRequest	true	"usuário"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário pelo username
//
//	@Summary	Detalhe de usuário
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		username	path		string	true	"username"
//	@Success	200			{object}	dto.UserResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/users/{username} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários, com busca por username
//
//	@Summary	Lista de usuários
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		search		query		string	false	"trecho do username"
//	@Param		page		query		int		false	"página"
//	@Param		page_size	query		int		false	"tamanho da página"
//	@Success	200			{object}	dto.PageResponse[dto.UserResponse]
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := dto.ParsePageNumber(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), repositories.UserFilters{
		Search: c.Query("search"),
		Page:   page,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageNumberPage(c, page, total, dto.ToUserResponses(users)))
}

// UpdateUser edita parcialmente um usuário, inclusive o papel (admin)
//
//	@Summary	Edição de usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		username	path		string					true	"username"
//	@Param		body		body		dto.UpdateUserRequest	true	"campos alterados"
//	@Success	200			{object}	dto.UserResponse
//	@Router		/users/{username} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("username"), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário e seu conteúdo (admin)
//
//	@Summary	Remoção de usuário
//	@Tags		users
//	@Security	BearerAuth
//	@Param		username	path	string	true	"username"
//	@Success	204
//	@Router		/users/{username} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("username")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMe retorna o perfil do chamador
//
//	@Summary	Perfil próprio
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponse
//	@Router		/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToUserResponse(middleware.CurrentUser(c)))
}

// UpdateMe edita o perfil do chamador; role é ignorado
//
//	@Summary	Edição do perfil próprio
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.UpdateUserRequest	true	"campos alterados"
//	@Success	200		{object}	dto.UserResponse
//	@Router		/users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateMe(c.Request.Context(), middleware.CurrentUser(c), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
