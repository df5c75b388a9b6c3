package mailing

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v2"
)

type ResendMailer struct {
	config MailConfig
	client *resend.Client
}

func NewResendMailer(cfg MailConfig) (*ResendMailer, error) {
	if cfg.ResendAPIKey == "" {
		return nil, errors.New("RESEND_API_KEY is not set")
	}
	return &ResendMailer{
		config: cfg,
		client: resend.NewClient(cfg.ResendAPIKey),
	}, nil
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.config.From(),
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	return err
}
