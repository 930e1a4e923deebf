package valueobjects

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// UsernameMaxLength é o tamanho máximo de um username
const UsernameMaxLength = 150

// ReservedUsername é o token reservado para o endpoint /users/me
const ReservedUsername = "me"

var (
	ErrUsernameEmpty    = errors.New("username is empty")
	ErrUsernameTooLong  = errors.New("username too long")
	ErrUsernameInvalid  = errors.New("username has invalid characters")
	ErrUsernameReserved = errors.New("username is reserved")
)

// letras, dígitos e sublinhado (unicode) mais . @ + -
var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+\-]+$`)

// Username é um value object para nomes de usuário
type Username struct {
	value string
}

// NewUsername valida e cria um Username
func NewUsername(username string) (Username, error) {
	if username == "" {
		return Username{}, ErrUsernameEmpty
	}

	if utf8.RuneCountInString(username) > UsernameMaxLength {
		return Username{}, ErrUsernameTooLong
	}

	if !usernamePattern.MatchString(username) {
		return Username{}, ErrUsernameInvalid
	}

	if strings.EqualFold(username, ReservedUsername) {
		return Username{}, ErrUsernameReserved
	}

	return Username{value: username}, nil
}

// String retorna o valor do username
func (u Username) String() string {
	return u.value
}
