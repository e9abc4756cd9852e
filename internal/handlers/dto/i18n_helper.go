package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/handlers/middleware"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/i18n"
)

// T traduce mensajes en el contexto de Gin.
// Uso: dto.T(c, "welcome", map[string]interface{}{"Name": "Juan"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Fallback: devolver la clave si el servicio no está disponible
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	lang := GetLanguage(c)

	return service.T(lang, key, params...)
}

// GetLanguage devuelve el idioma configurado en el contexto de la petición.
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "es"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "es"
	}

	return langStr
}
