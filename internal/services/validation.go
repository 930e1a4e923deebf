package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/policies"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
)

// Nomes de campos usados nas mensagens de validação (iguais aos do JSON)
const (
	fieldUsername         = "username"
	fieldEmail            = "email"
	fieldFirstName        = "first_name"
	fieldLastName         = "last_name"
	fieldRole             = "role"
	fieldConfirmationCode = "confirmation_code"
	fieldName             = "name"
	fieldSlug             = "slug"
	fieldYear             = "year"
	fieldCategory         = "category"
	fieldGenre            = "genre"
	fieldText             = "text"
	fieldScore            = "score"
)

// personNameMaxLength limita first_name e last_name
const personNameMaxLength = 150

func maxParams(max int) map[string]interface{} {
	return map[string]interface{}{"Max": max}
}

// checkText valida um texto obrigatório com tamanho máximo (0 = sem limite)
func checkText(v *errors.ValidationError, field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, errors.MsgRequired)
		return
	}
	checkLength(v, field, value, max)
}

func checkLength(v *errors.ValidationError, field, value string, max int) {
	if max > 0 && utf8.RuneCountInString(value) > max {
		v.Add(field, errors.MsgTooLong, maxParams(max))
	}
}

func checkUsername(v *errors.ValidationError, username string) {
	switch _, err := valueobjects.NewUsername(username); err {
	case nil:
	case valueobjects.ErrUsernameEmpty:
		v.Add(fieldUsername, errors.MsgRequired)
	case valueobjects.ErrUsernameTooLong:
		v.Add(fieldUsername, errors.MsgTooLong, maxParams(valueobjects.UsernameMaxLength))
	case valueobjects.ErrUsernameReserved:
		v.Add(fieldUsername, errors.MsgReservedUsername)
	default:
		v.Add(fieldUsername, errors.MsgInvalidUsername)
	}
}

func checkEmail(v *errors.ValidationError, email string) valueobjects.Email {
	if strings.TrimSpace(email) == "" {
		v.Add(fieldEmail, errors.MsgRequired)
		return valueobjects.Email{}
	}

	parsed, err := valueobjects.NewEmail(email)
	switch err {
	case nil:
	case valueobjects.ErrEmailTooLong:
		v.Add(fieldEmail, errors.MsgTooLong, maxParams(valueobjects.EmailMaxLength))
	default:
		v.Add(fieldEmail, errors.MsgInvalidEmail)
	}
	return parsed
}

func checkSlug(v *errors.ValidationError, slug string) {
	switch err := valueobjects.ValidateSlug(slug); err {
	case nil:
	case valueobjects.ErrSlugEmpty:
		v.Add(fieldSlug, errors.MsgRequired)
	case valueobjects.ErrSlugTooLong:
		v.Add(fieldSlug, errors.MsgTooLong, maxParams(valueobjects.SlugMaxLength))
	default:
		v.Add(fieldSlug, errors.MsgInvalidSlug)
	}
}

// identityConflicts identifica quais campos de identidade já pertencem a outro
// usuário depois que a constraint de unicidade disparou
func identityConflicts(ctx context.Context, repo repositories.UserRepository, username, email string) error {
	v := &errors.ValidationError{}

	if username != "" {
		taken, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			v.Add(fieldUsername, errors.MsgAlreadyUsed)
		}
	}

	if email != "" {
		taken, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			v.Add(fieldEmail, errors.MsgAlreadyUsed)
		}
	}

	if !v.Has(fieldUsername) && !v.Has(fieldEmail) {
		// a linha conflitante sumiu entre o erro e a consulta
		v.Add(errors.NonFieldErrors, errors.MsgAlreadyUsed)
	}
	return v
}

// authorize aplica a verificação de objeto da política.
// Anônimos recebem ErrUnauthorized; autenticados sem permissão, ErrForbidden.
func authorize(policy policies.Policy, caller *entities.User, action policies.Action, obj entities.Authored) error {
	if policy.HasObjectPermission(caller, action, obj) {
		return nil
	}
	if caller == nil {
		return errors.ErrUnauthorized
	}
	return errors.ErrForbidden
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
