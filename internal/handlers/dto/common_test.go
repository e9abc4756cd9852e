package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/dmirandam/backoffice-backend/internal/domain/errors"
)

func newProblemTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/recurso", handler)
	return router
}

func TestRespondDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"usuario inexistente", domainerrors.ErrUserNotFound, http.StatusNotFound, domainerrors.ProblemTypeNotFound},
		{"correo duplicado", domainerrors.ErrEmailAlreadyExists, http.StatusConflict, domainerrors.ProblemTypeConflict},
		{"credenciales inválidas", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized},
		{"acceso prohibido", domainerrors.ErrForbidden, http.StatusForbidden, domainerrors.ProblemTypeForbidden},
		{"límite de restablecimientos", domainerrors.ErrResetLimitExceeded, http.StatusTooManyRequests, domainerrors.ProblemTypeRateLimited},
		{"token de restablecimiento inválido", domainerrors.ErrInvalidResetToken, http.StatusBadRequest, domainerrors.ProblemTypeBadRequest},
		{"fallo de correo", domainerrors.ErrEmailSendFailed, http.StatusInternalServerError, domainerrors.ProblemTypeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newProblemTestRouter(func(c *gin.Context) {
				RespondDomainError(c, tc.err)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, se esperaba %d", rec.Code, tc.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/problem+json") {
				t.Errorf("Content-Type = %q, se esperaba application/problem+json", ct)
			}

			var body struct {
				Type     string `json:"type"`
				Title    string `json:"title"`
				Status   int    `json:"status"`
				Detail   string `json:"detail"`
				Instance string `json:"instance"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("cuerpo no es JSON: %v", err)
			}
			if !strings.HasSuffix(body.Type, tc.wantType) {
				t.Errorf("type = %q, se esperaba sufijo %q", body.Type, tc.wantType)
			}
			if body.Title != http.StatusText(tc.wantStatus) {
				t.Errorf("title = %q, se esperaba %q", body.Title, http.StatusText(tc.wantStatus))
			}
			if body.Status != tc.wantStatus {
				t.Errorf("status del cuerpo = %d, se esperaba %d", body.Status, tc.wantStatus)
			}
			if body.Instance != "/recurso" {
				t.Errorf("instance = %q, se esperaba /recurso", body.Instance)
			}
			// Sin servicio i18n en el contexto el detalle es la clave.
			if body.Detail != tc.err.Error() {
				t.Errorf("detail = %q, se esperaba %q", body.Detail, tc.err.Error())
			}
		})
	}

	t.Run("error desconocido responde 500 sin detalle interno", func(t *testing.T) {
		router := newProblemTestRouter(func(c *gin.Context) {
			RespondDomainError(c, http.ErrServerClosed)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, se esperaba 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), http.ErrServerClosed.Error()) {
			t.Error("el detalle no debía exponer el error interno")
		}
	})
}

func TestRespondValidationProblem(t *testing.T) {
	router := newProblemTestRouter(func(c *gin.Context) {
		RespondValidationProblem(c, []ValidationError{
			{Field: "email", Message: "correo inválido", Tag: "email"},
			{Field: "first_name", Message: "requerido", Tag: "required"},
		})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, se esperaba 400", rec.Code)
	}

	var body struct {
		Type   string            `json:"type"`
		Status int               `json:"status"`
		Errors []ValidationError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("cuerpo no es JSON: %v", err)
	}
	if !strings.HasSuffix(body.Type, domainerrors.ProblemTypeValidation) {
		t.Errorf("type = %q, se esperaba sufijo %q", body.Type, domainerrors.ProblemTypeValidation)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("errores = %d, se esperaban 2", len(body.Errors))
	}
	if body.Errors[0].Field != "email" || body.Errors[1].Tag != "required" {
		t.Errorf("errores de campo inesperados: %+v", body.Errors)
	}
}
