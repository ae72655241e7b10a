// Package notify sends candidate-facing email. The onboarding service talks
// to the Mailer interface only; deployments pick the SES implementation when
// notifications.email.enabled is set and the logging one otherwise, so the
// conversational flow behaves identically with and without AWS credentials.
package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"hr-voice-tools/internal/common/logger"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SESAPI is the slice of the SES client the mailer needs; tests substitute a
// fake.
type SESAPI interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SESMailer delivers through Amazon SES with a fixed verified sender.
type SESMailer struct {
	client SESAPI
	from   string
	logger logger.Logger
}

func NewSESMailer(client SESAPI, from string, log logger.Logger) *SESMailer {
	return &SESMailer{
		client: client,
		from:   from,
		logger: log.WithFields(map[string]interface{}{"mailer": "ses"}),
	}
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.from),
	})
	if err != nil {
		m.logger.WithError(err).Error("email send failed", map[string]interface{}{
			"to":      to,
			"subject": subject,
		})
		return err
	}
	m.logger.Info("email sent", map[string]interface{}{
		"to":      to,
		"subject": subject,
	})
	return nil
}

// LogMailer records the email instead of sending it. Default in local setups.
type LogMailer struct {
	logger logger.Logger
}

func NewLogMailer(log logger.Logger) *LogMailer {
	return &LogMailer{logger: log.WithFields(map[string]interface{}{"mailer": "log"})}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.logger.Info("email simulated", map[string]interface{}{
		"to":      to,
		"subject": subject,
		"bytes":   len(body),
	})
	return nil
}
