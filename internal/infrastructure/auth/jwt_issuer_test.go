package auth

import (
	"testing"
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/config"
)

func testConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:          "clave-de-prueba-no-usar-en-produccion",
		Issuer:          "backoffice-backend",
		Audience:        "backoffice-frontend",
		ExpirationHours: 1,
	}
}

func testUser() *entities.User {
	return &entities.User{
		ID:        42,
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@test.com",
		Role:      &entities.Role{Name: "Analista"},
	}
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewJWTIssuer(testConfig())

	token, expiresAt, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("fallo al emitir token: %v", err)
	}
	if token == "" {
		t.Fatal("el token emitido está vacío")
	}
	if remaining := time.Until(expiresAt); remaining < 55*time.Minute || remaining > time.Hour {
		t.Errorf("vigencia restante = %v, se esperaba cerca de una hora", remaining)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("fallo al verificar token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, se esperaba 42", claims.UserID)
	}
	if claims.Email != "ana@test.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Name != "Ana García" {
		t.Errorf("Name = %q", claims.Name)
	}
	if claims.Role != "Analista" {
		t.Errorf("Role = %q", claims.Role)
	}
}

func TestVerifyRejections(t *testing.T) {
	issuer := NewJWTIssuer(testConfig())

	t.Run("token malformado", func(t *testing.T) {
		if _, err := issuer.Verify("no-es-un-jwt"); err == nil {
			t.Error("se esperaba rechazo de un token malformado")
		}
	})

	t.Run("firma con otro secreto", func(t *testing.T) {
		other := testConfig()
		other.Secret = "otro-secreto-distinto"
		token, _, err := NewJWTIssuer(other).Issue(testUser())
		if err != nil {
			t.Fatalf("fallo al emitir token: %v", err)
		}
		if _, err := issuer.Verify(token); err == nil {
			t.Error("se esperaba rechazo por firma inválida")
		}
	})

	t.Run("emisor distinto", func(t *testing.T) {
		other := testConfig()
		other.Issuer = "otro-servicio"
		token, _, err := NewJWTIssuer(other).Issue(testUser())
		if err != nil {
			t.Fatalf("fallo al emitir token: %v", err)
		}
		if _, err := issuer.Verify(token); err == nil {
			t.Error("se esperaba rechazo por emisor inválido")
		}
	})

	t.Run("audiencia distinta", func(t *testing.T) {
		other := testConfig()
		other.Audience = "otra-audiencia"
		token, _, err := NewJWTIssuer(other).Issue(testUser())
		if err != nil {
			t.Fatalf("fallo al emitir token: %v", err)
		}
		if _, err := issuer.Verify(token); err == nil {
			t.Error("se esperaba rechazo por audiencia inválida")
		}
	})

	t.Run("token expirado", func(t *testing.T) {
		expired := testConfig()
		expired.ExpirationHours = -1
		token, _, err := NewJWTIssuer(expired).Issue(testUser())
		if err != nil {
			t.Fatalf("fallo al emitir token: %v", err)
		}
		if _, err := issuer.Verify(token); err == nil {
			t.Error("se esperaba rechazo por expiración")
		}
	})
}
