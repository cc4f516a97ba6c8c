package mailer

import (
	"context"

	"github.com/ghuser/ordersvc/pkg/config"
	"github.com/ghuser/ordersvc/pkg/logger"
)

// LogSender records messages in the log instead of delivering them.
type LogSender struct {
	log logger.Logger
}

func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return ErrNoRecipient
	}
	s.log.InfoContext(ctx, "email sent",
		"driver", config.MailDriverLog,
		"to", recipient,
		"subject", subject,
		"body", body,
	)
	return nil
}
