package mail

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"samplehub/internal/config"
)

var ErrNotConfigured = errors.New("smtp is not configured")

type Attachment struct {
	Filename string
	Content  []byte
}

type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer delivers messages over SMTP.
type Mailer struct {
	from   string
	dialer Dialer
}

func New(cfg config.MailConfig) *Mailer {
	var dialer Dialer
	if cfg.Host != "" {
		dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return NewWithDialer(cfg.From, dialer)
}

func NewWithDialer(from string, dialer Dialer) *Mailer {
	return &Mailer{from: from, dialer: dialer}
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := gomail.NewMessage()
	out.SetHeader("From", m.from)
	out.SetHeader("To", msg.To)
	out.SetHeader("Subject", msg.Subject)
	out.SetBody("text/html", msg.HTML)
	for _, attachment := range msg.Attachments {
		content := attachment.Content
		out.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(out); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}
