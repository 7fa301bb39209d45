// Package mailer owns the outbound email boundary: HTML rendering and the
// single-shot SMTP send. Failed sends are reported to the caller and never
// retried here.
package mailer

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/config"
)

// Display names on the From header.
const (
	AlertFromName  = "Lion Heart Order Management"
	DigestFromName = "The Lionheart Foundation"
)

// Mailer sends HTML email through the platform's SMTP relay.
type Mailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	logger    *zap.Logger
}

// New builds a mailer. The From address is derived from the site URL host
// (noreply@<host>), matching what the storefront itself sends from.
func New(cfg config.SMTPConfig, siteURL string, logger *zap.Logger) (*Mailer, error) {
	host, err := siteHost(siteURL)
	if err != nil {
		return nil, err
	}

	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		fromEmail: "noreply@" + host,
		logger:    logger,
	}, nil
}

func siteHost(siteURL string) (string, error) {
	u, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("invalid site url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("site url %q has no host", siteURL)
	}
	return u.Hostname(), nil
}

// FromEmail returns the derived sender address.
func (m *Mailer) FromEmail() string {
	return m.fromEmail
}

// Send dispatches one HTML email to the recipients. One attempt, no retry.
func (m *Mailer) Send(fromName string, recipients []string, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.fromEmail, fromName))
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("Failed to send email",
			zap.String("subject", subject),
			zap.Int("recipients", len(recipients)),
			zap.Error(err),
		)
		return err
	}

	m.logger.Info("Email sent",
		zap.String("subject", subject),
		zap.Int("recipients", len(recipients)),
	)
	return nil
}
