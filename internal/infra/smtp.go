package infra

import (
	"fmt"
	"net/smtp"

	"minipigs/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending emails with PDF attachments.
// All sends go through a circuit breaker so a caído relay does not stall
// the worker pool with slow timeouts.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
	breaker  *CircuitBreaker
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		breaker:  NewCircuitBreaker(DefaultCBConfig()),
	}
}

// BreakerState exposes the circuit breaker state for the health endpoint.
func (m *Mailer) BreakerState() CBState {
	return m.breaker.State()
}

// Enviar sends a plain-text email, optionally attaching a PDF (certificado de
// adopción). Returns ErrCircuitOpen without touching the network when the
// relay has been failing.
func (m *Mailer) Enviar(to, asunto, cuerpo, pdfPath string) error {
	return m.breaker.Execute(func() error {
		e := email.NewEmail()
		e.From = m.user
		e.To = []string{to}
		e.Subject = asunto
		e.Text = []byte(cuerpo)

		if pdfPath != "" {
			if _, err := e.AttachFile(pdfPath); err != nil {
				return fmt.Errorf("mailer: attach PDF: %w", err)
			}
		}

		auth := smtp.PlainAuth("", m.user, m.password, m.host)
		return e.Send(m.addr, auth)
	})
}
