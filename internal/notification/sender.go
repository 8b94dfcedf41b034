// Package notification delivers booking summaries to guests. Delivery is
// best-effort: a failed send is logged and never fails the booking.
package notification

import (
	"context"
	"log/slog"
)

// Message is a human-readable booking summary for one recipient.
type Message struct {
	RecipientName  string
	RecipientEmail string
	RecipientPhone string
	Subject        string
	Body           string
	MeetingLink    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes the summary to the log instead of an external provider.
// It stands in wherever no email/SMS gateway is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	slog.Info("notification delivered",
		"recipient", msg.RecipientEmail,
		"subject", msg.Subject,
		"meeting_link", msg.MeetingLink,
	)
	return nil
}
