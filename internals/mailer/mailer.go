// Package mailer is the email transport boundary. Notifications are
// authoritative; email delivery is best-effort and failures are only counted
// by callers, never rolled back.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"rentalku_backend/internals/configs"
)

// Mailer sends transactional emails. Implementations must be safe for
// sequential reuse across requests.
type Mailer interface {
	Send(to, subject, body string) error
	IsEnabled() bool
}

// SMTPMailer sends mail through a plain SMTP relay (Mailhog in dev,
// a provider SMTP endpoint in prod).
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

func NewFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUser,
		Password: configs.SMTPPassword,
		From:     configs.SMTPFrom,
		FromName: configs.SMTPFromName,
	}
}

func (m *SMTPMailer) IsEnabled() bool {
	return m.Host != ""
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if !m.IsEnabled() {
		log.Printf("[WARN] SMTP disabled, skipping email to %s (%s)", to, subject)
		return nil
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", m.FromName, m.From),
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
