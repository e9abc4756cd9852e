package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/config"
)

// rateLimitWindow es la ventana deslizante del límite de solicitudes.
const rateLimitWindow = 24 * time.Hour

// ResetAttemptInfo resume los intentos de un usuario dentro de la ventana,
// con las horas que faltan para que su contador vuelva a cero.
type ResetAttemptInfo struct {
	UserID          uint
	Email           string
	Attempts        int
	LastAttempt     time.Time
	AtLimit         bool
	HoursUntilReset float64
}

// PasswordResetService gobierna el ciclo de vida de los tokens de reset:
// emisión con límite por ventana deslizante, consumo atómico de un solo
// uso y utilidades administrativas.
type PasswordResetService struct {
	tokenRepo repositories.ResetTokenRepository
	userRepo  repositories.UserRepository
	uow       ports.UnitOfWork
	mailer    ports.Mailer
	security  ports.SecurityLogger
	cfg       *config.PasswordResetConfig
	logger    ports.Logger
}

// NewPasswordResetService crea un nuevo PasswordResetService.
func NewPasswordResetService(
	tokenRepo repositories.ResetTokenRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	mailer ports.Mailer,
	security ports.SecurityLogger,
	cfg *config.PasswordResetConfig,
	logger ports.Logger,
) *PasswordResetService {
	return &PasswordResetService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		uow:       uow,
		mailer:    mailer,
		security:  security,
		cfg:       cfg,
		logger:    logger,
	}
}

// Initiate procesa una solicitud de restablecimiento. La respuesta para
// correos inexistentes o cuentas inactivas es idéntica a la de un correo
// válido: no se revela si el correo está registrado. El único caso que
// difiere es el exceso del límite, que devuelve ErrResetLimitExceeded.
func (s *PasswordResetService) Initiate(ctx context.Context, email, ip string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		// Respuesta genérica sin crear ni registrar nada
		return nil
	}

	if !user.IsActive() {
		s.security.LogSecurityEvent(ports.EventPasswordResetInactiveUser,
			fmt.Sprintf("reset requested for inactive account %s", email), ip)
		return nil
	}

	now := time.Now().UTC()
	since := now.Add(-rateLimitWindow)

	attempts, err := s.tokenRepo.CountForUserSince(ctx, user.ID, since)
	if err != nil {
		return err
	}
	if attempts >= int64(s.cfg.MaxRequestsPerDay) {
		s.security.LogSecurityEvent(ports.EventPasswordResetLimit,
			fmt.Sprintf("reset limit exceeded for %s (%d attempts)", email, attempts), ip)
		return errors.ErrResetLimitExceeded
	}

	raw, err := generateResetToken()
	if err != nil {
		return err
	}

	token := &entities.PasswordResetToken{
		Token:     raw,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TokenExpiration()),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	// El token ya existe y cuenta para el límite aunque el correo falle;
	// no se revierte, el enlace sigue siendo canjeable.
	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendBaseURL, raw)
	body := buildResetEmailBody(user.FullName(), link, s.cfg.TokenExpirationMinutes)
	if err := s.mailer.Send(ctx, user.Email, "Restablecimiento de contraseña", body); err != nil {
		s.logger.Error("failed to send reset email",
			"user_id", user.ID,
			"error", err,
		)
		return errors.ErrEmailSendFailed
	}

	// El evento se registra solo cuando el correo salió
	s.security.LogSecurityEvent(ports.EventPasswordResetInitiated,
		fmt.Sprintf("reset token issued for %s", email), ip)

	return nil
}

// Validate verifica que un token exista, no esté usado y no haya expirado.
// No lo consume.
func (s *PasswordResetService) Validate(ctx context.Context, raw, ip string) error {
	token, err := s.tokenRepo.FindByToken(ctx, raw)
	if err != nil {
		return err
	}
	if token == nil {
		s.security.LogSecurityEvent(ports.EventInvalidResetToken,
			"validation of unknown reset token", ip)
		return errors.ErrInvalidResetToken
	}

	// Usado y expirado comparten el mensaje del token desconocido: la
	// respuesta no distingue un token equivocado de uno vencido.
	now := time.Now().UTC()
	if token.IsUsed() || token.IsExpired(now) {
		s.security.LogSecurityEvent(ports.EventExpiredResetToken,
			"validation of used or expired reset token", ip)
		return errors.ErrInvalidResetToken
	}

	return nil
}

// Complete consume un token válido y cambia la contraseña de su dueño.
// El consumo y el cambio ocurren en la misma transacción: ningún estado
// intermedio (token usado sin contraseña nueva, o al revés) es observable.
func (s *PasswordResetService) Complete(ctx context.Context, raw, newPassword, ip string) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		token, err := s.tokenRepo.FindByToken(txCtx, raw)
		if err != nil {
			return err
		}
		if token == nil || token.User == nil || token.User.IsDeleted() {
			s.security.LogSecurityEvent(ports.EventInvalidResetToken,
				"attempt to consume unknown or ownerless reset token", ip)
			return errors.ErrInvalidResetToken
		}

		// Mismo mensaje que el token desconocido: no se revela si el
		// token existió alguna vez.
		now := time.Now().UTC()
		if token.IsUsed() || token.IsExpired(now) {
			s.security.LogSecurityEvent(ports.EventExpiredResetToken,
				"attempt to consume used or expired reset token", ip)
			return errors.ErrInvalidResetToken
		}

		user := token.User
		if !user.IsActive() {
			s.security.LogSecurityEvent(ports.EventPasswordResetInactiveUser,
				fmt.Sprintf("reset attempt on inactive account %s", user.Email), ip)
			return errors.ErrInvalidResetToken
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
		if err != nil {
			return err
		}

		user.PasswordHash = string(hash)
		user.UpdatedAt = &now
		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}

		token.Consume(now)
		if err := s.tokenRepo.Update(txCtx, token); err != nil {
			return err
		}

		s.security.LogSecurityEvent(ports.EventPasswordResetSuccessful,
			fmt.Sprintf("password reset completed for %s", user.Email), ip)
		return nil
	})
}

// CleanupExpired borra todos los tokens ya expirados y devuelve cuántos
// se eliminaron. Es idempotente.
func (s *PasswordResetService) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.tokenRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.security.LogSecurityEvent(ports.EventExpiredTokensCleaned,
			fmt.Sprintf("%d expired reset tokens removed", deleted), "system")
	}
	return deleted, nil
}

// Stats agrupa los intentos de la ventana vigente por usuario, con las
// horas restantes hasta que cada contador vuelva a cero.
func (s *PasswordResetService) Stats(ctx context.Context) ([]ResetAttemptInfo, error) {
	now := time.Now().UTC()
	stats, err := s.tokenRepo.StatsSince(ctx, now.Add(-rateLimitWindow))
	if err != nil {
		return nil, err
	}

	infos := make([]ResetAttemptInfo, 0, len(stats))
	for _, stat := range stats {
		hoursSince := now.Sub(stat.LastAttempt).Hours()
		hoursLeft := rateLimitWindow.Hours() - hoursSince
		if hoursLeft < 0 {
			hoursLeft = 0
		}

		infos = append(infos, ResetAttemptInfo{
			UserID:          stat.UserID,
			Email:           stat.Email,
			Attempts:        stat.Attempts,
			LastAttempt:     stat.LastAttempt,
			AtLimit:         stat.Attempts >= s.cfg.MaxRequestsPerDay,
			HoursUntilReset: hoursLeft,
		})
	}
	return infos, nil
}

// ResetAttempts borra los tokens del usuario dentro de la ventana vigente
// para que pueda volver a solicitar un restablecimiento.
func (s *PasswordResetService) ResetAttempts(ctx context.Context, userID uint, ip string) (int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, errors.ErrUserNotFound
	}

	since := time.Now().UTC().Add(-rateLimitWindow)
	deleted, err := s.tokenRepo.DeleteForUserSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}

	s.security.LogSecurityEvent(ports.EventResetAttemptsCleared,
		fmt.Sprintf("reset attempts cleared for %s (%d tokens)", user.Email, deleted), ip)
	return deleted, nil
}

// generateResetToken produce 32 bytes de azar criptográfico en hex.
func generateResetToken() (string, error) {
	buf := make([]byte, entities.TokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func buildResetEmailBody(name, link string, expirationMinutes int) string {
	return fmt.Sprintf(`<html>
<body>
  <p>Hola %s,</p>
  <p>Recibimos una solicitud para restablecer tu contraseña. Haz clic en el
  siguiente enlace para continuar:</p>
  <p><a href="%s">Restablecer contraseña</a></p>
  <p>El enlace expira en %d minutos. Si no solicitaste este cambio, ignora
  este correo.</p>
</body>
</html>`, name, link, expirationMinutes)
}
