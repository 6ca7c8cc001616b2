// Package mailer sends best-effort notification mail. Delivery failures are
// the caller's to log and swallow; they never fail the operation that
// triggered the mail.
package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// SendGridNotifier delivers through the SendGrid v3 API.
type SendGridNotifier struct {
	apiKey     string
	senderName string
	senderAddr string
}

func NewSendGridNotifier(apiKey, senderName, senderAddr string) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey:     apiKey,
		senderName: senderName,
		senderAddr: senderAddr,
	}
}

func (n *SendGridNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	from := sgmail.NewEmail(n.senderName, n.senderAddr)
	to := sgmail.NewEmail("", recipient)
	message := sgmail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d", response.StatusCode)
	}
	return nil
}

// NoopNotifier stands in when no SendGrid key is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	return nil
}
