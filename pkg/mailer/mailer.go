// Package mailer delivers plain-text email notifications.
//
// Two drivers are available, selected by MAIL_DRIVER:
//   - ses: Amazon SES through aws-sdk-go-v2
//   - log: writes the message to the project logger (development and tests)
package mailer

import (
	"context"
	"fmt"

	"github.com/ghuser/ordersvc/pkg/config"
	"github.com/ghuser/ordersvc/pkg/logger"
)

// Sender sends one email. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// New returns the Sender configured by cfg.MailDriver.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Sender, error) {
	switch cfg.MailDriver {
	case config.MailDriverSES:
		s, err := NewSESSender(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.MailDriverLog, "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("mailer: unknown driver %q", cfg.MailDriver)
	}
}
