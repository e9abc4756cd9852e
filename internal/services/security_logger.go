package services

import (
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
)

// SecurityLogger escribe eventos de seguridad al log estructurado como
// canal lateral de solo escritura. Ninguna escritura devuelve error: el
// flujo que dispara el evento nunca debe fallar por el registro.
type SecurityLogger struct {
	logger ports.Logger
}

// NewSecurityLogger crea un nuevo SecurityLogger.
func NewSecurityLogger(logger ports.Logger) ports.SecurityLogger {
	return &SecurityLogger{
		logger: logger.With("channel", "security"),
	}
}

func (s *SecurityLogger) LogFailedLogin(email, ip string) {
	s.logger.Warn("SECURITY EVENT: failed login",
		"event", ports.EventLoginFailed,
		"email", email,
		"ip", ip,
	)
}

func (s *SecurityLogger) LogSuccessfulLogin(email, ip string) {
	s.logger.Info("SECURITY EVENT: successful login",
		"event", ports.EventLoginSuccess,
		"email", email,
		"ip", ip,
	)
}

func (s *SecurityLogger) LogUnauthorizedAccess(endpoint, ip string) {
	s.logger.Warn("SECURITY EVENT: unauthorized access",
		"event", ports.EventUnauthorizedAccess,
		"endpoint", endpoint,
		"ip", ip,
	)
}

func (s *SecurityLogger) LogSuspiciousActivity(email, activity, ip string) {
	s.logger.Warn("SECURITY EVENT: suspicious activity",
		"event", ports.EventSuspiciousActivity,
		"email", email,
		"activity", activity,
		"ip", ip,
	)
}

func (s *SecurityLogger) LogSecurityEvent(eventType, description, ip string) {
	s.logger.Info("SECURITY EVENT",
		"event", eventType,
		"description", description,
		"ip", ip,
	)
}
