package ports

// Vocabulario cerrado de eventos de seguridad.
const (
	EventPasswordResetInitiated    = "PASSWORD_RESET_INITIATED"
	EventPasswordResetLimit        = "PASSWORD_RESET_LIMIT_EXCEEDED"
	EventPasswordResetInactiveUser = "PASSWORD_RESET_ATTEMPT_INACTIVE_USER"
	EventPasswordResetSuccessful   = "PASSWORD_RESET_SUCCESSFUL"
	EventInvalidResetToken         = "INVALID_RESET_TOKEN_ATTEMPT"
	EventExpiredResetToken         = "EXPIRED_RESET_TOKEN_ATTEMPT"
	EventResetAttemptsCleared      = "PASSWORD_RESET_ATTEMPTS_RESET"
	EventExpiredTokensCleaned      = "EXPIRED_TOKENS_CLEANUP"
	EventLoginFailed               = "LOGIN_FAILED"
	EventLoginSuccess              = "LOGIN_SUCCESS"
	EventUnauthorizedAccess        = "UNAUTHORIZED_ACCESS"
	EventSuspiciousActivity        = "SUSPICIOUS_ACTIVITY"
)

// SecurityLogger registra eventos relevantes de seguridad como canal
// lateral de solo escritura. Las escrituras nunca deben fallar la
// operación que las dispara.
type SecurityLogger interface {
	LogFailedLogin(email, ip string)
	LogSuccessfulLogin(email, ip string)
	LogUnauthorizedAccess(endpoint, ip string)
	LogSuspiciousActivity(email, activity, ip string)
	LogSecurityEvent(eventType, description, ip string)
}
