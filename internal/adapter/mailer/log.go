// Package mailer delivers account e-mails.
package mailer

import (
	"context"
	"log/slog"
)

// LogMailer writes outgoing mail to the log instead of sending it.
// It stands in for an SMTP or API-backed mailer.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{log: logger.With("adapter", "mailer")}
}

// SendPasswordReset logs the reset link addressed to email.
func (m *LogMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	m.log.InfoContext(ctx, "password reset mail",
		slog.String("to", email),
		slog.String("link", link),
	)
	return nil
}
