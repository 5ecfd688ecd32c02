// Package mail provides the SMTP implementation of the notification
// port.
package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/storefront/backend/internal/application/notification"
	"github.com/storefront/backend/internal/infrastructure/config"
)

var _ notification.Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends email through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	body, err := render(welcomeTemplate, struct{ Name string }{Name: name})
	if err != nil {
		return err
	}
	return m.send(ctx, to, "Welcome to our store!", body)
}

func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, to string, conf notification.OrderConfirmation) error {
	body, err := render(orderConfirmationTemplate, conf)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Order Confirmation - %s", conf.OrderNumber)
	return m.send(ctx, to, subject, body)
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	body, err := render(passwordResetTemplate, struct{ ResetLink string }{ResetLink: resetLink})
	if err != nil {
		return err
	}
	return m.send(ctx, to, "Reset your password", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	// gomail has no context support; honor cancellation before the
	// dial rather than mid-send.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}
	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
