package mailing

import (
	"context"
	"fmt"
	"strings"

	"pocketsense-backend/internal/utils"
)

type (
	Message struct {
		To      []string
		Subject string
		Body    string
	}

	// Mailer is the outbound mail transport.
	Mailer interface {
		Send(ctx context.Context, msg Message) error
	}

	MailConfig struct {
		AppURL       string
		Driver       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
		ResendAPIKey string
	}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		Driver:       utils.GetConfig("MAIL_DRIVER"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
		ResendAPIKey: utils.GetConfig("RESEND_API_KEY"),
	}
}

// From renders the sender header, "Name <address>" when a name is configured.
func (c MailConfig) From() string {
	if c.SMTPSender == "" {
		return c.SMTPEmail
	}
	return fmt.Sprintf("%s <%s>", c.SMTPSender, c.SMTPEmail)
}

// NewMailer picks the transport named by MAIL_DRIVER; smtp is the default.
func NewMailer(cfg MailConfig) (Mailer, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "smtp":
		return NewSMTPMailer(cfg)
	case "resend":
		return NewResendMailer(cfg)
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}
