package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// AdminHandler atiende las utilidades administrativas del flujo de reset.
type AdminHandler struct {
	resetService *services.PasswordResetService
}

// NewAdminHandler crea un nuevo AdminHandler.
func NewAdminHandler(resetService *services.PasswordResetService) *AdminHandler {
	return &AdminHandler{
		resetService: resetService,
	}
}

// GetResetStats agrupa los intentos de reset de la ventana vigente por
// usuario, ordenados por número de intentos descendente.
func (h *AdminHandler) GetResetStats(c *gin.Context) {
	stats, err := h.resetService.Stats(c.Request.Context())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResetAttemptResponses(stats))
}

// ResetUserAttempts borra los tokens de la ventana vigente de un usuario
// para que pueda volver a solicitar un restablecimiento.
func (h *AdminHandler) ResetUserAttempts(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	deleted, err := h.resetService.ResetAttempts(c.Request.Context(), userID, c.ClientIP())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": dto.T(c, "reset.attempts_cleared"),
		"deleted": deleted,
	})
}

// CleanupExpiredTokens borra todos los tokens ya expirados.
func (h *AdminHandler) CleanupExpiredTokens(c *gin.Context) {
	deleted, err := h.resetService.CleanupExpired(c.Request.Context())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CleanupResponse{
		Message: dto.T(c, "cleanup_completed"),
		Deleted: deleted,
	})
}
