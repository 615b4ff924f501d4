package service

import "context"

// MailMessage is the payload handed to the transport.
type MailMessage struct {
	RequestID string `json:"request_id,omitempty"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// NotificationSender delivers account e-mails (password reset only).
type NotificationSender interface {
	Send(ctx context.Context, toAddress, subject, body string) error

	// Close releases any resources held by the sender
	Close() error
}
