package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"pawhaven/internal/pkg/config"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(_ context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		m.cfg.FromName, m.cfg.FromAddress, to, subject, body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	return smtp.SendMail(addr, auth, m.cfg.FromAddress, []string{to}, []byte(msg))
}

// logMailer stands in when no SMTP host is configured (local development).
type logMailer struct{}

func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) Send(_ context.Context, to, subject, _ string) error {
	slog.Info("email suppressed: no SMTP host configured", "to", to, "subject", subject)
	return nil
}

// NewMailer picks the SMTP implementation when a host is configured.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		return NewLogMailer()
	}
	return NewSMTPMailer(cfg)
}
