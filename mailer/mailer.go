// Package mailer delivers the newsletter welcome email through SendGrid.
package mailer

import "context"

// Mailer sends the subscription welcome email.
type Mailer interface {
	SendWelcome(ctx context.Context, toEmail string) error
}
