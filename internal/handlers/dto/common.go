package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
)

// BaseURLContextKey guarda a URL base usada nas URIs de problema e nos links de paginação
const BaseURLContextKey = "base_url"

const defaultBaseURL = "http://localhost:8080"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BaseURL retorna a URL base configurada para a requisição
func BaseURL(c *gin.Context) string {
	if baseURL := c.GetString(BaseURLContextKey); baseURL != "" {
		return baseURL
	}
	return defaultBaseURL
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = BaseURL(c) + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem}
}

// AbortWithProblem escreve a resposta como application/problem+json e interrompe a cadeia
func AbortWithProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// FieldErrorsResponseI18n traduz os erros de campo do domínio
func FieldErrorsResponseI18n(c *gin.Context, verr *domainerrors.ValidationError) ErrorResponse {
	fields := make([]ValidationError, len(verr.Errors))
	for i, fe := range verr.Errors {
		fields[i] = ValidationError{
			Field:   fe.Field,
			Message: T(c, fe.Key, fe.Params),
		}
	}
	return ValidationErrorResponseI18n(c, fields)
}

// BadRequestErrorResponseI18n cria uma resposta 400 para corpo ilegível
func BadRequestErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		"error.bad_request.detail",
		http.StatusBadRequest,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404; detailKey é o sentinel do domínio
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.unauthorized.detail"
	}
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		http.StatusUnauthorized,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		http.StatusForbidden,
	)
}

// TooManyRequestsErrorResponseI18n cria uma resposta de erro 429
func TooManyRequestsErrorResponseI18n(c *gin.Context, retryAfter int) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeRateLimited,
		"error.rate_limited.title",
		"error.rate_limited.detail",
		http.StatusTooManyRequests,
		map[string]interface{}{"RetryAfter": retryAfter},
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}
