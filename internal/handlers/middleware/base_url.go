package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
)

// BaseURL disponibiliza a URL base da API para links de paginação e URIs de problema
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, baseURL)
		c.Next()
	}
}
