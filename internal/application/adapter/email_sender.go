package adapter

import "context"

// EmailMessage represents an email to send.
type EmailMessage struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// EmailSender defines the interface for sending emails.
type EmailSender interface {
	// Send sends an email and returns the provider message ID.
	Send(ctx context.Context, message EmailMessage) (string, error)
}
