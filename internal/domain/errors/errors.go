package errors

import "errors"

// Errores de negocio.
// Nota: son códigos de error (message IDs para i18n).
// Las traducciones viven en internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrRoleNotFound       = errors.New("error.role_not_found")
	ErrModuleNotFound     = errors.New("error.module_not_found")
	ErrPermissionNotFound = errors.New("error.permission_not_found")
	ErrTaskNotFound       = errors.New("error.task_not_found")
	ErrCatalogNotFound    = errors.New("error.catalog_not_found")

	ErrEmailAlreadyExists      = errors.New("error.email_already_exists")
	ErrRoleNameAlreadyExists   = errors.New("error.role_name_already_exists")
	ErrModuleCodeAlreadyExists = errors.New("error.module_code_already_exists")
	ErrPermissionAlreadyExists = errors.New("error.permission_already_exists")

	ErrSystemRoleProtected  = errors.New("error.system_role_protected")
	ErrRoleInUse            = errors.New("error.role_in_use")
	ErrModuleHasPermissions = errors.New("error.module_has_permissions")

	ErrInvalidCredentials    = errors.New("error.invalid_credentials")
	ErrUserInactive          = errors.New("error.user_inactive")
	ErrUnauthorized          = errors.New("error.unauthorized")
	ErrForbidden             = errors.New("error.forbidden")
	ErrResetLimitExceeded    = errors.New("error.reset_limit_exceeded")
	ErrInvalidResetToken     = errors.New("error.invalid_reset_token")
	ErrEmailSendFailed       = errors.New("error.email_send_failed")
	ErrInvalidPermissionType = errors.New("error.invalid_permission_type")
)

// ProblemType define tipos de problemas (URIs RFC 7807).
// Nota: el dominio base viene de configuración (API_BASE_URL).
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeRateLimited  = "/problems/rate-limited"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa un error de dominio con contexto adicional.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
