package notifier

import (
	"context"

	"github.com/pitchside/leagueops/internal/platform/logging"
)

// LogNotifier writes mail to the log instead of a relay. It backs local
// development and the in-memory wiring, where no SMTP relay exists.
type LogNotifier struct {
	logger *logging.Logger
}

func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, toEmail, subject, body string) error {
	n.logger.InfoContext(ctx, "mail suppressed (log notifier)",
		"to", toEmail,
		"subject", subject,
		"body", body,
	)

	return nil
}
