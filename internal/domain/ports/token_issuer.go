package ports

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// TokenIssuer emite un token bearer opaco para un usuario autenticado.
// La mecánica de firma queda en la implementación.
type TokenIssuer interface {
	Issue(user *entities.User) (token string, expiresAt time.Time, err error)
}
