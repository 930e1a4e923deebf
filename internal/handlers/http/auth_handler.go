package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// AuthHandler atende o cadastro e a troca do código por token
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Signup cadastra o par username/email e envia o código de confirmação
//
//	@Summary	Cadastro por username e email
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.SignupRequest	true	"identidade"
//	@Success	200		{object}	dto.SignupResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignupResponse{
		Username: user.Username,
		Email:    user.Email.String(),
	})
}

// Token troca o código de confirmação por um token de acesso
//
//	@Summary	Obtenção do token de acesso
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.TokenRequest	true	"username e código"
//	@Success	200		{object}	dto.TokenResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
