package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// PermissionMiddleware protege rutas exigiendo un nivel mínimo de
// permiso sobre un módulo. Debe ejecutarse después de RequireAuth.
type PermissionMiddleware struct {
	permissionService *services.PermissionService
	security          ports.SecurityLogger
}

// NewPermissionMiddleware crea un nuevo PermissionMiddleware.
func NewPermissionMiddleware(permissionService *services.PermissionService, security ports.SecurityLogger) *PermissionMiddleware {
	return &PermissionMiddleware{
		permissionService: permissionService,
		security:          security,
	}
}

// Require rechaza con 403 al usuario que no alcanza el nivel requerido
// sobre el módulo.
func (m *PermissionMiddleware) Require(moduleCode string, level entities.PermissionType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)
		if userID == 0 {
			abortProblem(c, errors.ProblemTypeUnauthorized, http.StatusUnauthorized, "error.unauthorized")
			return
		}

		allowed, err := m.permissionService.HasPermission(c.Request.Context(), userID, moduleCode, level)
		if err != nil {
			// Un token de un usuario borrado deja de servir; un módulo
			// desconocido es una guardia mal configurada
			if stderrors.Is(err, errors.ErrUserNotFound) {
				m.security.LogUnauthorizedAccess(c.Request.URL.Path, c.ClientIP())
				abortProblem(c, errors.ProblemTypeUnauthorized, http.StatusUnauthorized, "error.unauthorized")
				return
			}
			abortProblem(c, errors.ProblemTypeInternal, http.StatusInternalServerError, "error.internal")
			return
		}
		if !allowed {
			m.security.LogSecurityEvent(ports.EventUnauthorizedAccess,
				fmt.Sprintf("user %d denied %s on %s", userID, level.String(), moduleCode),
				c.ClientIP())
			abortProblem(c, errors.ProblemTypeForbidden, http.StatusForbidden, "error.forbidden")
			return
		}

		c.Next()
	}
}
