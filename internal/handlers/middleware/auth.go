package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
)

const userContextKey = "current_user"

// UserFinder carrega o usuário dono do token
type UserFinder interface {
	GetUserByID(ctx context.Context, id uint) (*entities.User, error)
}

// Authenticator resolve o header Authorization: Bearer <token>
type Authenticator struct {
	tokens ports.TokenManager
	users  UserFinder
	logger ports.Logger
}

// NewAuthenticator cria o middleware de autenticação
func NewAuthenticator(tokens ports.TokenManager, users UserFinder, logger ports.Logger) *Authenticator {
	return &Authenticator{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

// Authenticate identifica o chamador. Sem header a requisição segue anônima;
// um token inválido ou de usuário removido responde 401.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidToken.Error()))
			return
		}

		userID, err := a.tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidToken.Error()))
			return
		}

		user, err := a.users.GetUserByID(c.Request.Context(), userID)
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidToken.Error()))
			return
		}
		if err != nil {
			a.logger.Error("failed to load token user", "user_id", userID, "error", err)
			dto.AbortWithProblem(c, dto.InternalErrorResponseI18n(c))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado ou nil para requisições anônimas
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}

// RequireUser exige um chamador autenticado, sem checar papel
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, ""))
			return
		}
		c.Next()
	}
}
