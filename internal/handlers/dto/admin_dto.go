package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/services"
)

// ResetAttemptResponse resume los intentos de reset de un usuario dentro
// de la ventana vigente.
type ResetAttemptResponse struct {
	UserID          uint      `json:"user_id"`
	Email           string    `json:"email"`
	Attempts        int       `json:"attempts"`
	LastAttempt     time.Time `json:"last_attempt"`
	AtLimit         bool      `json:"at_limit"`
	HoursUntilReset float64   `json:"hours_until_reset"`
}

// ToResetAttemptResponses convierte las estadísticas del servicio.
func ToResetAttemptResponses(infos []services.ResetAttemptInfo) []ResetAttemptResponse {
	responses := make([]ResetAttemptResponse, len(infos))
	for i, info := range infos {
		responses[i] = ResetAttemptResponse{
			UserID:          info.UserID,
			Email:           info.Email,
			Attempts:        info.Attempts,
			LastAttempt:     info.LastAttempt,
			AtLimit:         info.AtLimit,
			HoursUntilReset: info.HoursUntilReset,
		}
	}
	return responses
}

// CleanupResponse es el resultado de una limpieza de tokens expirados.
type CleanupResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
