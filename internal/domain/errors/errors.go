package errors

import (
	"errors"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound     = errors.New("error.user_not_found")
	ErrCategoryNotFound = errors.New("error.category_not_found")
	ErrGenreNotFound    = errors.New("error.genre_not_found")
	ErrTitleNotFound    = errors.New("error.title_not_found")
	ErrReviewNotFound   = errors.New("error.review_not_found")
	ErrCommentNotFound  = errors.New("error.comment_not_found")
	ErrUnauthorized     = errors.New("error.unauthorized")
	ErrForbidden        = errors.New("error.forbidden")
	ErrInvalidToken     = errors.New("error.invalid_token")
)

// ErrUniqueViolation é devolvido pelos repositórios quando uma constraint
// de unicidade do banco dispara. Os services reclassificam em ValidationError.
var ErrUniqueViolation = errors.New("error.unique_violation")

// Mensagens de validação de campo (message IDs para i18n)
const (
	MsgRequired         = "validation.required"
	MsgTooLong          = "validation.too_long"
	MsgInvalidUsername  = "validation.username_invalid"
	MsgReservedUsername = "validation.username_reserved"
	MsgInvalidEmail     = "validation.email_invalid"
	MsgAlreadyUsed      = "validation.already_used"
	MsgInvalidCode      = "validation.invalid_code"
	MsgInvalidSlug      = "validation.slug_invalid"
	MsgSlugTaken        = "validation.slug_taken"
	MsgUnknownSlug      = "validation.unknown_slug"
	MsgGenreRequired    = "validation.genre_required"
	MsgYearInFuture     = "validation.year_in_future"
	MsgScoreOutOfRange  = "validation.score_out_of_range"
	MsgReviewExists     = "validation.review_exists"
	MsgInvalidRole      = "validation.role_invalid"
	MsgInvalidValue     = "validation.invalid_value"
)

// NonFieldErrors agrupa erros que não pertencem a um campo específico
const NonFieldErrors = "non_field_errors"

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeRateLimited  = "/problems/too-many-requests"
)

// FieldError representa uma mensagem de validação associada a um campo
type FieldError struct {
	Field  string
	Key    string
	Params map[string]interface{}
}

// ValidationError acumula erros de validação por campo
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError cria um ValidationError com um único erro de campo
func NewValidationError(field, key string, params ...map[string]interface{}) *ValidationError {
	v := &ValidationError{}
	v.Add(field, key, params...)
	return v
}

// Add registra uma mensagem para o campo
func (v *ValidationError) Add(field, key string, params ...map[string]interface{}) {
	fe := FieldError{Field: field, Key: key}
	if len(params) > 0 {
		fe.Params = params[0]
	}
	v.Errors = append(v.Errors, fe)
}

// Has informa se existe ao menos um erro para o campo
func (v *ValidationError) Has(field string) bool {
	for _, fe := range v.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Fields retorna os nomes dos campos com erro, na ordem em que foram adicionados
func (v *ValidationError) Fields() []string {
	seen := make(map[string]bool, len(v.Errors))
	fields := make([]string, 0, len(v.Errors))
	for _, fe := range v.Errors {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

// Err retorna nil quando não há erros acumulados
func (v *ValidationError) Err() error {
	if v == nil || len(v.Errors) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Errors))
	for _, fe := range v.Errors {
		parts = append(parts, fe.Field+": "+fe.Key)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsNotFound verifica se o erro representa um recurso inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrGenreNotFound) ||
		errors.Is(err, ErrTitleNotFound) ||
		errors.Is(err, ErrReviewNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}

// IsUniqueViolation verifica se o erro veio de uma constraint de unicidade
func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrUniqueViolation)
}
