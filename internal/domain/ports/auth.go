package ports

import (
	"time"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
)

// TokenManager emite e valida tokens de acesso
type TokenManager interface {
	Issue(user *entities.User) (string, error)
	// Parse valida o token e retorna o ID do usuário
	Parse(token string) (uint, error)
}

// ConfirmationCodes deriva, protege e confere códigos de confirmação
type ConfirmationCodes interface {
	Derive(username, email string) string
	Hash(code string) (string, error)
	Matches(hash, code string) bool
}

// Clock abstrai o relógio para permitir testes determinísticos
type Clock interface {
	Now() time.Time
}

// SystemClock usa o relógio do sistema em UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
