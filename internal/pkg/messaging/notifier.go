package messaging

import (
	"context"
	"log/slog"
)

// Notifier delivers a rendered message to a phone number. Actual
// SMS/WhatsApp delivery lives outside this service; the core only
// renders messages and hands them to whichever Notifier is wired in.
type Notifier interface {
	Send(ctx context.Context, toNumber string, message string) error
}

// LogNotifier writes messages to the structured log instead of
// delivering them. Used as the default wiring and in tests.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, toNumber string, message string) error {
	slog.InfoContext(ctx, "notification rendered", "to", toNumber, "message", message)
	return nil
}
