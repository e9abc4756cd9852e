package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/auth"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/i18n"
)

const (
	// UserIDContextKey es la clave del ID del usuario autenticado
	UserIDContextKey = "user_id"
	// UserEmailContextKey es la clave del correo del usuario autenticado
	UserEmailContextKey = "user_email"
	// UserRoleContextKey es la clave del rol del usuario autenticado
	UserRoleContextKey = "user_role"
)

// CurrentUserID devuelve el ID del usuario autenticado, 0 si no hay.
func CurrentUserID(c *gin.Context) uint {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return 0
	}
	id, ok := value.(uint)
	if !ok {
		return 0
	}
	return id
}

// translate traduce una clave usando el servicio i18n del contexto. El
// paquete dto no puede usarse aquí porque dto depende de este paquete.
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}
	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	return service.T(langStr, key)
}

// abortProblem escribe un problema RFC 7807 y corta la cadena.
func abortProblem(c *gin.Context, problemType string, status int, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, translate(c, detailKey))
	problem.Type = baseURL + problemType
	problem.Title = http.StatusText(status)
	problem.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}

// AuthMiddleware valida el token Bearer e inyecta la identidad del
// usuario en el contexto de la petición.
type AuthMiddleware struct {
	issuer   *auth.JWTIssuer
	security ports.SecurityLogger
}

// NewAuthMiddleware crea un nuevo AuthMiddleware.
func NewAuthMiddleware(issuer *auth.JWTIssuer, security ports.SecurityLogger) *AuthMiddleware {
	return &AuthMiddleware{
		issuer:   issuer,
		security: security,
	}
}

// RequireAuth rechaza con 401 las peticiones sin token válido.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			m.security.LogUnauthorizedAccess(c.Request.URL.Path, c.ClientIP())
			abortProblem(c, errors.ProblemTypeUnauthorized, http.StatusUnauthorized, "error.unauthorized")
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := m.issuer.Verify(raw)
		if err != nil {
			m.security.LogUnauthorizedAccess(c.Request.URL.Path, c.ClientIP())
			abortProblem(c, errors.ProblemTypeUnauthorized, http.StatusUnauthorized, "error.unauthorized")
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UserEmailContextKey, claims.Email)
		c.Set(UserRoleContextKey, claims.Role)

		c.Next()
	}
}
