package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	tmpDir := t.TempDir()

	esContent := `{"welcome": "Bienvenido"}`
	if err := os.WriteFile(filepath.Join(tmpDir, "es.json"), []byte(esContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("fallo al crear es.json: %v", err)
	}

	enContent := `{"welcome": "Welcome"}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("fallo al crear en.json: %v", err)
	}

	service, err := i18n.NewService(tmpDir, "es")
	if err != nil {
		t.Fatalf("fallo al inicializar servicio i18n: %v", err)
	}

	return service
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	t.Run("detecta idioma del query parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/?lang=en", nil)

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuve '%s'", lang)
		}
	})

	t.Run("detecta idioma del header Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Language", "en,es;q=0.9")
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuve '%s'", lang)
		}
	})

	t.Run("usa el idioma por defecto cuando no se indica ninguno", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "es" {
			t.Errorf("esperaba 'es' (por defecto), obtuve '%s'", lang)
		}
	})

	t.Run("query parameter tiene prioridad sobre Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/?lang=en", nil)
		req.Header.Set("Accept-Language", "es")
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuve '%s'", lang)
		}
	})

	t.Run("ignora query parameter inválido y usa Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/?lang=fr", nil)
		req.Header.Set("Accept-Language", "en")
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuve '%s'", lang)
		}
	})

	t.Run("define el servicio i18n en el contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		middleware.DetectLanguage()(c)

		service, exists := c.Get(I18nServiceContextKey)
		if !exists {
			t.Fatal("el servicio i18n no quedó definido en el contexto")
		}

		if service == nil {
			t.Error("el servicio i18n es nulo")
		}
	})
}

func TestI18nMiddleware_parseAcceptLanguage(t *testing.T) {
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{
			name:       "idioma único soportado",
			acceptLang: "es",
			expected:   "es",
		},
		{
			name:       "varios idiomas, el primero soportado",
			acceptLang: "en,es;q=0.9",
			expected:   "en",
		},
		{
			name:       "varios idiomas, el segundo soportado",
			acceptLang: "fr,es;q=0.9,en;q=0.8",
			expected:   "es",
		},
		{
			name:       "ningún idioma soportado",
			acceptLang: "fr,de;q=0.9",
			expected:   "",
		},
		{
			name:       "header vacío",
			acceptLang: "",
			expected:   "",
		},
		{
			name:       "variante con región cae a la base",
			acceptLang: "es-MX",
			expected:   "es",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.parseAcceptLanguage(tt.acceptLang)
			if result != tt.expected {
				t.Errorf("esperaba '%s', obtuve '%s'", tt.expected, result)
			}
		})
	}
}

func TestI18nMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	router := gin.New()
	router.Use(middleware.DetectLanguage())
	router.GET("/test", func(c *gin.Context) {
		lang, _ := c.Get(LanguageContextKey)
		service, _ := c.Get(I18nServiceContextKey)
		i18nSvc := service.(*i18n.Service)

		message := i18nSvc.T(lang.(string), "welcome")
		c.JSON(http.StatusOK, gin.H{"message": message})
	})

	t.Run("integración completa en español", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test?lang=es", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperaba status 200, obtuve %d", w.Code)
		}

		expected := `{"message":"Bienvenido"}`
		if w.Body.String() != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, w.Body.String())
		}
	})

	t.Run("integración completa en inglés vía Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Language", "en")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperaba status 200, obtuve %d", w.Code)
		}

		expected := `{"message":"Welcome"}`
		if w.Body.String() != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, w.Body.String())
		}
	})
}
