package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/domain/policies"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
)

// Permit aplica a checagem de coleção da política antes de qualquer busca.
// Anônimos recebem 401; autenticados sem permissão recebem 403.
func Permit(policy policies.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CurrentUser(c)
		if policy.HasPermission(caller, policies.ActionFromMethod(c.Request.Method)) {
			c.Next()
			return
		}

		if caller == nil {
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, ""))
			return
		}
		dto.AbortWithProblem(c, dto.ForbiddenErrorResponseI18n(c))
	}
}
