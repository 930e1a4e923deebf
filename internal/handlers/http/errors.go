package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
)

var notFoundErrors = []error{
	domainerrors.ErrUserNotFound,
	domainerrors.ErrCategoryNotFound,
	domainerrors.ErrGenreNotFound,
	domainerrors.ErrTitleNotFound,
	domainerrors.ErrReviewNotFound,
	domainerrors.ErrCommentNotFound,
}

// respondError traduz erros do domínio em respostas RFC 7807
func respondError(c *gin.Context, logger ports.Logger, err error) {
	var validation *domainerrors.ValidationError

	switch {
	case errors.As(err, &validation):
		dto.AbortWithProblem(c, dto.FieldErrorsResponseI18n(c, validation))
	case domainerrors.IsNotFound(err):
		dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, notFoundKey(err)))
	case errors.Is(err, domainerrors.ErrInvalidToken):
		dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidToken.Error()))
	case errors.Is(err, domainerrors.ErrUnauthorized):
		dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, ""))
	case errors.Is(err, domainerrors.ErrForbidden):
		dto.AbortWithProblem(c, dto.ForbiddenErrorResponseI18n(c))
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		dto.AbortWithProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

func notFoundKey(err error) string {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "error.not_found.title"
}

// pathID lê um ID numérico do path; IDs inválidos respondem com o 404 do recurso
func pathID(c *gin.Context, name string, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, notFound.Error()))
		return 0, false
	}
	return uint(id), true
}
