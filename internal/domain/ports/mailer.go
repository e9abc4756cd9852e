package ports

import "context"

// Mailer define la capacidad de envío de correo. El cuerpo es HTML.
// Un error significa que el correo no salió; el que llama decide qué hacer.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
