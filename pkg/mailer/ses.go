package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/ghuser/ordersvc/pkg/config"
	"github.com/ghuser/ordersvc/pkg/logger"
)

const charset = "UTF-8"

var (
	// ErrNoRecipient is returned when Send is called with an empty address.
	ErrNoRecipient = errors.New("mailer: recipient address is empty")
	// ErrNoSender is returned when the SES driver has no source address configured.
	ErrNoSender = errors.New("mailer: sender address is not configured")
)

// SESClient is the subset of *ses.Client used by SESSender.
type SESClient interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender sends email through Amazon SES.
type SESSender struct {
	client SESClient
	from   string
	log    logger.Logger
}

// NewSESSender builds an SES client for cfg.AWSRegion. Static credentials are
// used when both key fields are set; otherwise the default AWS chain applies.
func NewSESSender(ctx context.Context, cfg *config.Config, log logger.Logger) (*SESSender, error) {
	if cfg.MailSender == "" {
		return nil, ErrNoSender
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: load aws config: %w", err)
	}

	return NewSESSenderWithClient(ses.NewFromConfig(awsCfg), cfg.MailSender, log), nil
}

// NewSESSenderWithClient wires an existing client. Tests pass a fake.
func NewSESSenderWithClient(client SESClient, from string, log logger.Logger) *SESSender {
	return &SESSender{client: client, from: from, log: log}
}

// Send delivers a text/plain message to a single recipient.
func (s *SESSender) Send(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return ErrNoRecipient
	}

	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String(charset), Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Charset: aws.String(charset), Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("mailer: ses send: %w", err)
	}

	s.log.InfoContext(ctx, "email sent", "driver", config.MailDriverSES, "message_id", aws.ToString(out.MessageId))
	return nil
}
