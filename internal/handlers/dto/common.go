package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/dmirandam/backoffice-backend/internal/domain/errors"
)

// ValidationError representa un error de validación de campo.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ValidationProblem es un problema RFC 7807 extendido con los errores
// de campo.
type ValidationProblem struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// MessageResponse es una respuesta simple con mensaje traducido.
type MessageResponse struct {
	Message string `json:"message"`
}

// PaginatedResponse envuelve un listado con su total sin paginar.
type PaginatedResponse struct {
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// newProblem construye un problema RFC 7807 con el tipo absoluto y la
// instancia de la petición.
func newProblem(c *gin.Context, problemType string, status int, detail string) *problems.Problem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL + problemType
	problem.Title = http.StatusText(status)
	problem.Instance = c.Request.URL.Path
	return problem
}

// RespondProblem escribe un problema RFC 7807 traduciendo detailKey y
// aborta los handlers restantes.
func RespondProblem(c *gin.Context, problemType string, status int, detailKey string, params ...map[string]interface{}) {
	problem := newProblem(c, problemType, status, T(c, detailKey, params...))
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}

// RespondValidationProblem escribe un problema 400 con los errores de
// campo adjuntos.
func RespondValidationProblem(c *gin.Context, validationErrors []ValidationError) {
	problem := newProblem(c, domainerrors.ProblemTypeValidation, http.StatusBadRequest, T(c, "error.validation_failed"))
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationProblem{
		Problem: *problem,
		Errors:  validationErrors,
	})
}

// RespondDomainError traduce un error de dominio a su problema RFC 7807.
// Los errores no reconocidos se responden como 500 sin detalle interno.
func RespondDomainError(c *gin.Context, err error) {
	switch err {
	case domainerrors.ErrUserNotFound,
		domainerrors.ErrRoleNotFound,
		domainerrors.ErrModuleNotFound,
		domainerrors.ErrPermissionNotFound,
		domainerrors.ErrTaskNotFound,
		domainerrors.ErrCatalogNotFound:
		RespondProblem(c, domainerrors.ProblemTypeNotFound, http.StatusNotFound, err.Error())

	case domainerrors.ErrEmailAlreadyExists,
		domainerrors.ErrRoleNameAlreadyExists,
		domainerrors.ErrModuleCodeAlreadyExists,
		domainerrors.ErrPermissionAlreadyExists,
		domainerrors.ErrSystemRoleProtected,
		domainerrors.ErrRoleInUse,
		domainerrors.ErrModuleHasPermissions:
		RespondProblem(c, domainerrors.ProblemTypeConflict, http.StatusConflict, err.Error())

	case domainerrors.ErrInvalidCredentials,
		domainerrors.ErrUserInactive,
		domainerrors.ErrUnauthorized:
		RespondProblem(c, domainerrors.ProblemTypeUnauthorized, http.StatusUnauthorized, err.Error())

	case domainerrors.ErrForbidden:
		RespondProblem(c, domainerrors.ProblemTypeForbidden, http.StatusForbidden, err.Error())

	case domainerrors.ErrResetLimitExceeded:
		RespondProblem(c, domainerrors.ProblemTypeRateLimited, http.StatusTooManyRequests, err.Error())

	case domainerrors.ErrInvalidResetToken,
		domainerrors.ErrInvalidPermissionType:
		RespondProblem(c, domainerrors.ProblemTypeBadRequest, http.StatusBadRequest, err.Error())

	case domainerrors.ErrEmailSendFailed:
		RespondProblem(c, domainerrors.ProblemTypeInternal, http.StatusInternalServerError, err.Error())

	default:
		RespondProblem(c, domainerrors.ProblemTypeInternal, http.StatusInternalServerError, "error.internal")
	}
}
