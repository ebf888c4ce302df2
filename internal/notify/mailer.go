package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// Mailer publishes notifications to the admin inbox via Resend.
type Mailer struct {
	client *resend.Client
	from   string
	to     string
}

func NewMailer(apiKey, from, to string) *Mailer {
	return &Mailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (m *Mailer) Publish(ctx context.Context, message string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: "New satisfaction survey submitted",
		Text:    message,
	}

	sent, err := m.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	log.Printf("📧 Notification email sent (ID: %s)", sent.Id)
	return nil
}
