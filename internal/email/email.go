package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"careconnect_backend/internal/config"
	"careconnect_backend/internal/logger"
)

// Sender delivers transactional mail to a single recipient.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through a configured SMTP relay using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}
	return &SMTPSender{
		dialer: dialer,
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// NoopSender is used when the email channel is disabled in config.
// It logs instead of delivering so the rest of the pipeline is unchanged.
type NoopSender struct{}

func (NoopSender) Send(to, subject, _ string) error {
	logger.Debug("email delivery disabled, dropping message", "to", to, "subject", subject)
	return nil
}
