package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/config"
)

// SMTPMailer envía correo HTML por SMTP plano con AUTH opcional.
// En modo simulación solo escribe el correo al log, útil en desarrollo
// y en las pruebas.
type SMTPMailer struct {
	cfg *config.SMTPConfig
	log ports.Logger
}

// NewSMTPMailer crea un nuevo SMTPMailer.
func NewSMTPMailer(cfg *config.SMTPConfig, log ports.Logger) ports.Mailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.cfg.SimulateMode {
		m.log.Info("simulated email",
			"to", to,
			"subject", subject,
			"body_length", len(htmlBody),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.cfg.FromName, m.cfg.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.log.Debug("email sent", "to", to, "subject", subject)
	return nil
}
