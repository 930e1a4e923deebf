package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
)

const issuer = "yamdb"

// JWTManager emite e valida tokens de acesso HS256
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	clock  ports.Clock
}

// NewJWTManager cria um JWTManager com o segredo e a validade informados
func NewJWTManager(secret string, ttl time.Duration, clock ports.Clock) *JWTManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, clock: clock}
}

// Issue gera um token cujo subject é o ID do usuário
func (m *JWTManager) Issue(user *entities.User) (string, error) {
	now := m.clock.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse valida assinatura, emissor e expiração e retorna o ID do usuário
func (m *JWTManager) Parse(token string) (uint, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return 0, errors.Join(domainerrors.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return 0, domainerrors.ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidToken
	}
	return uint(id), nil
}
