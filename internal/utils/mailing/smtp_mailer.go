package mailing

import (
	"context"
	"strconv"

	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	config MailConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg MailConfig) (*SMTPMailer, error) {
	port := 587
	if cfg.SMTPPort != "" {
		p, err := strconv.Atoi(cfg.SMTPPort)
		if err != nil {
			return nil, err
		}
		port = p
	}
	return &SMTPMailer{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPEmail, cfg.SMTPPassword),
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.config.From())
	mailer.SetHeader("To", msg.To...)
	mailer.SetHeader("Subject", msg.Subject)
	mailer.SetBody("text/plain", msg.Body)

	return m.dialer.DialAndSend(mailer)
}
