package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// ConfirmationCodes deriva o código de confirmação a partir do par
// (username, email) e guarda apenas o seu digest bcrypt.
type ConfirmationCodes struct {
	secret []byte
	cost   int
}

// NewConfirmationCodes cria o derivador. Com secret vazio o código é
// sha256(username+email); caso contrário, HMAC-SHA256 com o segredo.
func NewConfirmationCodes(secret string, cost int) *ConfirmationCodes {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &ConfirmationCodes{secret: []byte(secret), cost: cost}
}

// Derive é determinístico: o mesmo par sempre gera o mesmo código
func (c *ConfirmationCodes) Derive(username, email string) string {
	payload := []byte(username + email)

	if len(c.secret) == 0 {
		sum := sha256.Sum256(payload)
		return hex.EncodeToString(sum[:])
	}

	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *ConfirmationCodes) Hash(code string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(code), c.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches compara o código apresentado com o digest guardado
func (c *ConfirmationCodes) Matches(hash, code string) bool {
	if hash == "" || code == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
