package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	welcomeSubject = "Welcome to Dev@Deakin!"
	welcomeText    = "Thank you for subscribing to the Dev@Deakin platform!"
	welcomeHTML    = "<strong>Thanks for subscribing to Dev@Deakin!</strong>"
)

// SendGridMailer sends the welcome email via the SendGrid v3 API.
type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridMailer(apiKey, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("Dev@Deakin", fromEmail),
	}
}

func (m *SendGridMailer) SendWelcome(ctx context.Context, toEmail string) error {
	msg := mail.NewSingleEmail(m.from, welcomeSubject, mail.NewEmail("", toEmail), welcomeText, welcomeHTML)
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
