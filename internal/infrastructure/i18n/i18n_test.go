package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// setupTestLocales crea archivos de locale temporales para las pruebas
func setupTestLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	esContent := `{
  "welcome": "¡Bienvenido, {{.Name}}!",
  "user_created": "Usuario creado exitosamente",
  "error.user_not_found": "Usuario no encontrado"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "es.json"), []byte(esContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("fallo al crear es.json: %v", err)
	}

	enContent := `{
  "welcome": "Welcome, {{.Name}}!",
  "user_created": "User created successfully",
  "error.user_not_found": "User not found"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("fallo al crear en.json: %v", err)
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("carga traducciones con éxito", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		service, err := NewService(tmpDir, "es")
		if err != nil {
			t.Fatalf("esperaba éxito, obtuve error: %v", err)
		}

		if service.GetDefaultLanguage() != "es" {
			t.Errorf("esperaba idioma por defecto 'es', obtuve '%s'", service.GetDefaultLanguage())
		}

		supportedLangs := service.GetSupportedLanguages()
		if len(supportedLangs) != 2 {
			t.Errorf("esperaba 2 idiomas soportados, obtuve %d", len(supportedLangs))
		}
	})

	t.Run("error cuando el directorio no existe", func(t *testing.T) {
		_, err := NewService("/directorio/inexistente", "es")
		if err == nil {
			t.Error("esperaba error, obtuve éxito")
		}
	})

	t.Run("error cuando el idioma por defecto no existe", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		_, err := NewService(tmpDir, "fr")
		if err == nil {
			t.Error("esperaba error para idioma por defecto inexistente, obtuve éxito")
		}
	})
}

func TestService_T(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "es")
	if err != nil {
		t.Fatalf("fallo al inicializar servicio: %v", err)
	}

	t.Run("traduce mensaje simple en español", func(t *testing.T) {
		result := service.T("es", "user_created")
		expected := "Usuario creado exitosamente"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("traduce mensaje simple en inglés", func(t *testing.T) {
		result := service.T("en", "user_created")
		expected := "User created successfully"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("traduce mensaje con parámetros", func(t *testing.T) {
		result := service.T("es", "welcome", map[string]interface{}{"Name": "Juan"})
		expected := "¡Bienvenido, Juan!"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("fallback al idioma por defecto cuando el idioma no existe", func(t *testing.T) {
		result := service.T("fr", "user_created")
		expected := "Usuario creado exitosamente"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("devuelve la clave cuando la traducción no existe", func(t *testing.T) {
		result := service.T("es", "clave.inexistente")
		expected := "clave.inexistente"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "es")
	if err != nil {
		t.Fatalf("fallo al inicializar servicio: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"es", true},
		{"en", true},
		{"fr", false},
		{"de", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.IsLanguageSupported(tt.lang)
			if result != tt.expected {
				t.Errorf("para idioma '%s', esperaba %v, obtuve %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "es")
	if err != nil {
		t.Fatalf("fallo al inicializar servicio: %v", err)
	}

	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("es", "welcome", map[string]interface{}{"Name": "Test"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("en", "user_created")
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("es")
		}()
	}

	// Con -race este test detecta condiciones de carrera
	wg.Wait()
}
