package mail

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/application/notification"
)

var _ notification.Mailer = (*StubMailer)(nil)

// SentMessage records one email the stub "delivered".
type SentMessage struct {
	To       string
	Template string
	Body     string
}

// StubMailer logs email instead of sending it. Used in development and
// tests.
type StubMailer struct {
	logger *zap.Logger

	mu   sync.Mutex
	sent []SentMessage
}

func NewStubMailer(logger *zap.Logger) *StubMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StubMailer{logger: logger}
}

func (m *StubMailer) SendWelcome(_ context.Context, to, name string) error {
	body, err := render(welcomeTemplate, struct{ Name string }{Name: name})
	if err != nil {
		return err
	}
	m.record(to, "welcome", body)
	return nil
}

func (m *StubMailer) SendOrderConfirmation(_ context.Context, to string, conf notification.OrderConfirmation) error {
	body, err := render(orderConfirmationTemplate, conf)
	if err != nil {
		return err
	}
	m.record(to, "order-confirmation", body)
	return nil
}

func (m *StubMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	body, err := render(passwordResetTemplate, struct{ ResetLink string }{ResetLink: resetLink})
	if err != nil {
		return err
	}
	m.record(to, "password-reset", body)
	return nil
}

func (m *StubMailer) record(to, template, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMessage{To: to, Template: template, Body: body})
	m.logger.Info("Email (stub)", zap.String("to", to), zap.String("template", template))
}

// Sent returns a copy of everything delivered so far.
func (m *StubMailer) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
