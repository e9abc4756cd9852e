package repositories

import (
	"context"
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// ResetAttemptStat resume los intentos de reset de un usuario dentro de
// la ventana consultada.
type ResetAttemptStat struct {
	UserID      uint
	Email       string
	Attempts    int
	LastAttempt time.Time
}

// ResetTokenRepository define la interfaz de persistencia de tokens de
// reset de contraseña. Los tokens nunca se actualizan salvo para estampar
// UsedAt; la limpieza es un borrado explícito por expiración.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *entities.PasswordResetToken) error
	// FindByToken busca por coincidencia exacta e incluye el usuario dueño.
	FindByToken(ctx context.Context, token string) (*entities.PasswordResetToken, error)
	Update(ctx context.Context, token *entities.PasswordResetToken) error
	// CountForUserSince cuenta los tokens creados para el usuario después
	// del instante dado (ventana deslizante, no día calendario).
	CountForUserSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	// DeleteExpired borra todos los tokens con expiración anterior a now,
	// usados o no. Idempotente.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	// DeleteForUserSince borra los tokens del usuario creados después del
	// instante dado (reinicio administrativo del contador).
	DeleteForUserSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	// StatsSince agrupa los tokens creados después del instante dado por
	// usuario dueño, ordenados por número de intentos descendente.
	StatsSince(ctx context.Context, since time.Time) ([]ResetAttemptStat, error)
}
