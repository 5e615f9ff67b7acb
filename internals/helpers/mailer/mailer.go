// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"mathify_backend/internals/configs"
)

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Mail struct {
	To          string
	ToName      string
	Subject     string
	PlainText   string
	HTML        string
	Attachments []Attachment
}

// Service is the outbound mail port; SendGrid in production, console
// fallback when no API key is configured.
type Service interface {
	Send(ctx context.Context, m Mail) error
}

func NewFromEnv() Service {
	if configs.SendGridAPIKey == "" {
		return &consoleService{}
	}
	return &sendGridService{client: sendgrid.NewSendClient(configs.SendGridAPIKey)}
}

// -----------------------------------------
// SendGrid backend
// -----------------------------------------
type sendGridService struct {
	client *sendgrid.Client
}

func (s *sendGridService) Send(ctx context.Context, m Mail) error {
	from := mail.NewEmail(configs.MailFromName, configs.MailFrom)
	to := mail.NewEmail(m.ToName, m.To)

	html := m.HTML
	if html == "" {
		html = m.PlainText
	}
	msg := mail.NewSingleEmail(from, m.Subject, to, m.PlainText, html)

	for _, a := range m.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Data))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// -----------------------------------------
// Console backend (local dev)
// -----------------------------------------
type consoleService struct{}

func (s *consoleService) Send(ctx context.Context, m Mail) error {
	log.Printf("[MAIL] to=%s subject=%q attachments=%d\n%s", m.To, m.Subject, len(m.Attachments), m.PlainText)
	return nil
}
