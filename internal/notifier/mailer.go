package notifier

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/oleocontrol/oleocontrol/internal"
)

// Attachment is an in-memory file attached to an outgoing mail.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Mailer interface {
	Send(to, subject, body string, attachments ...Attachment) error
}

// SMTPMailer sends plain-text mail over SMTP with optional attachments.
type SMTPMailer struct {
	cfg internal.SMTPConfig
}

func NewSMTPMailer(cfg internal.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string, attachments ...Attachment) error {
	msg := email.NewEmail()
	msg.From = m.cfg.From
	msg.To = []string{to}
	msg.Subject = subject
	msg.Text = []byte(body)

	for _, a := range attachments {
		if _, err := msg.Attach(bytes.NewReader(a.Content), a.Filename, a.ContentType); err != nil {
			return fmt.Errorf("attach %s: %w", a.Filename, err)
		}
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return msg.Send(addr, auth)
}
