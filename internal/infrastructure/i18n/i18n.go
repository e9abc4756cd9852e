package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"text/template"
)

// Service administra las traducciones de la aplicación.
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [idioma][clave]mensaje
	defaultLanguage string
}

// NewService crea un nuevo servicio de i18n.
// localesDir: directorio con los archivos JSON de traducción
// defaultLang: idioma por defecto (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	files, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	for _, file := range files {
		lang := filepath.Base(file)
		lang = lang[:len(lang)-5] // quita la extensión .json

		data, err := os.ReadFile(file) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduce una clave al idioma indicado.
// Soporta interpolación de parámetros con templates de Go ({{.Name}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.getTranslation(lang, key)

	// Fallback al idioma por defecto
	if message == "" {
		message = s.getTranslation(s.defaultLanguage, key)
	}

	// Si no existe en ningún idioma, devolver la clave
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

// getTranslation busca una traducción sin tomar el lock (uso interno).
func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// GetDefaultLanguage devuelve el idioma por defecto configurado.
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages devuelve la lista de idiomas soportados.
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported indica si un idioma está soportado.
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
