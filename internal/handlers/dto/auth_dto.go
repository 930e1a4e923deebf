package dto

import "github.com/rafabene/yamdb-backend/internal/services"

// SignupRequest representa o cadastro por username e email
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// SignupResponse ecoa o par cadastrado; o código segue apenas por email
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest troca o código de confirmação por um token
type TokenRequest struct {
	Username         string `json:"username" binding:"required"`
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
}

// TokenResponse contém o token de acesso
type TokenResponse struct {
	Token string `json:"token"`
}

func (r SignupRequest) ToInput() services.SignupInput {
	return services.SignupInput{Username: r.Username, Email: r.Email}
}

func (r TokenRequest) ToInput() services.TokenInput {
	return services.TokenInput{Username: r.Username, ConfirmationCode: r.ConfirmationCode}
}
