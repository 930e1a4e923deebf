package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Roles lista os papéis válidos
var Roles = []Role{RoleAdmin, RoleModerator, RoleUser}

// IsValid verifica se o papel é conhecido
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRole converte uma string em Role, informando se o valor é válido
func ParseRole(value string) (Role, bool) {
	role := Role(value)
	return role, role.IsValid()
}
