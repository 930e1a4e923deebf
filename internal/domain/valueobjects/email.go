package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

// EmailMaxLength é o tamanho máximo aceito para emails
const EmailMaxLength = 254

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmailTooLong = errors.New("email too long")
)

var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos
type Email struct {
	value string
}

// NewEmail cria um novo Email validado.
// A caixa é preservada: o endereço entra como digitado no código de confirmação.
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(email)

	if len(email) > EmailMaxLength {
		return Email{}, ErrEmailTooLong
	}

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// MustEmail é como NewEmail mas entra em pânico para valores inválidos.
// Uso restrito a dados já persistidos e a testes.
func MustEmail(email string) Email {
	e, err := NewEmail(email)
	if err != nil {
		panic(err)
	}
	return e
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 {
		return false
	}
	return emailPattern.MatchString(email)
}
