package entities

import (
	"testing"
	"time"
)

func TestPasswordResetToken_IsValid(t *testing.T) {
	now := time.Now().UTC()

	t.Run("token fresco es válido", func(t *testing.T) {
		token := &PasswordResetToken{
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}
		if !token.IsValid(now) {
			t.Error("esperaba token válido")
		}
	})

	t.Run("token expirado no es válido", func(t *testing.T) {
		token := &PasswordResetToken{
			CreatedAt: now.Add(-2 * time.Hour),
			ExpiresAt: now.Add(-time.Hour),
		}
		if token.IsValid(now) {
			t.Error("esperaba token inválido por expiración")
		}
		if !token.IsExpired(now) {
			t.Error("esperaba IsExpired verdadero")
		}
	})

	t.Run("la expiración es inclusiva en el instante exacto", func(t *testing.T) {
		token := &PasswordResetToken{ExpiresAt: now}
		if token.IsExpired(now) {
			t.Error("el token no debe expirar en el instante exacto de ExpiresAt")
		}
		if token.IsExpired(now.Add(-time.Second)) {
			t.Error("el token no debe estar expirado antes de ExpiresAt")
		}
		if !token.IsExpired(now.Add(time.Second)) {
			t.Error("el token debe estar expirado después de ExpiresAt")
		}
	})

	t.Run("consumir invalida permanentemente", func(t *testing.T) {
		token := &PasswordResetToken{
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}

		token.Consume(now)

		if !token.IsUsed() {
			t.Error("esperaba IsUsed verdadero tras Consume")
		}
		if token.IsValid(now) {
			t.Error("un token consumido nunca es válido")
		}
		if token.UsedAt == nil || !token.UsedAt.Equal(now) {
			t.Error("UsedAt debe registrar el instante del consumo")
		}
	})
}
