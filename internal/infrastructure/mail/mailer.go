// Package mail adaptadores de ports.Mailer: SMTP con gomail o solo log.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
	"github.com/jhoicas/stonecrusher-api/pkg/config"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*LogMailer)(nil)
)

// sender abstrae gomail.Dialer para poder probar sin servidor SMTP.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer envía correos de texto plano por SMTP.
type SMTPMailer struct {
	dialer sender
	from   string
	log    *logger.Logger
}

// NewSMTPMailer construye el mailer con las credenciales de cfg.
func NewSMTPMailer(cfg config.MailConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log.Named("mail"),
	}
}

// Send envía un mensaje a todos los destinatarios en una sola conexión.
func (m *SMTPMailer) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp: enviar %q: %w", subject, err)
	}
	m.log.Info().Strs("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}

// LogMailer registra el correo en lugar de enviarlo (desarrollo, SMTP sin configurar).
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.Named("mail")}
}

func (m *LogMailer) Send(_ context.Context, to []string, subject, body string) error {
	m.log.Info().Strs("to", to).Str("subject", subject).Str("body", body).Msg("correo (sin SMTP)")
	return nil
}

// New elige el adaptador según la configuración.
func New(cfg config.MailConfig, log *logger.Logger) ports.Mailer {
	if cfg.Enabled() {
		return NewSMTPMailer(cfg, log)
	}
	return NewLogMailer(log)
}
