package entities

import (
	"time"

	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema
type User struct {
	ID        uint
	Username  string
	Email     valueobjects.Email
	FirstName string
	LastName  string
	Bio       string
	Role      Role
	// ConfirmationCode guarda apenas o digest do código enviado por email
	ConfirmationCode string
	IsSuperuser      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin verifica se o usuário é admin (papel admin ou superusuário)
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}

// IsModerator verifica se o usuário é moderador
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// IsUser verifica se o usuário tem o papel comum
func (u *User) IsUser() bool {
	return u.Role == RoleUser
}

// HasConfirmationCode informa se já houve um signup para este usuário
func (u *User) HasConfirmationCode() bool {
	return u.ConfirmationCode != ""
}
