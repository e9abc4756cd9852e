package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// LoginRequest representa la petición de autenticación.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa la respuesta de una autenticación exitosa.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ForgotPasswordRequest representa la solicitud de restablecimiento.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ValidateResetTokenRequest representa la verificación de un token.
type ValidateResetTokenRequest struct {
	Token string `json:"token" binding:"required,len=64,hexadecimal"`
}

// ResetPasswordRequest representa el consumo de un token de reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required,len=64,hexadecimal"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// ToLoginResponse construye la respuesta de login.
func ToLoginResponse(user *entities.User, token string, expiresAt time.Time) LoginResponse {
	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}
}
