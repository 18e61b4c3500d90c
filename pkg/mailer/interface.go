package mailer

import "context"

// IMailer defines the email delivery interface.
// Delivery failures are returned to the caller and never retried here.
type IMailer interface {
	Send(ctx context.Context, msg Message) error
}
