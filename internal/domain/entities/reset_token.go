package entities

import "time"

// TokenLength es el largo en caracteres del token de reset (32 bytes en hex).
const TokenLength = 64

// PasswordResetToken es una credencial aleatoria de un solo uso y tiempo
// limitado que permite exactamente un cambio de contraseña. El estado nunca
// se almacena: IsUsed, IsExpired e IsValid se derivan de UsedAt y ExpiresAt.
type PasswordResetToken struct {
	ID        uint
	Token     string
	UserID    uint
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time

	User *User
}

// IsUsed indica si el token ya fue consumido.
func (t *PasswordResetToken) IsUsed() bool {
	return t.UsedAt != nil
}

// IsExpired indica si el token expiró en el instante dado.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsValid indica si el token puede consumirse en el instante dado:
// no usado y no expirado.
func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return !t.IsUsed() && !t.IsExpired(now)
}

// Consume marca el token como usado. A partir de aquí IsValid es
// permanentemente falso.
func (t *PasswordResetToken) Consume(now time.Time) {
	t.UsedAt = &now
}
