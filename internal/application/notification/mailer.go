// Package notification defines the outbound email port used by the
// identity and order services.
package notification

import "context"

// OrderConfirmation carries the fields the order confirmation email
// renders.
type OrderConfirmation struct {
	OrderNumber  string
	CustomerName string
	Total        string // already formatted, e.g. "$499.00"
}

// Mailer sends transactional email. Implementations must not block
// request handling on slow SMTP servers longer than the context
// allows.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendOrderConfirmation(ctx context.Context, to string, conf OrderConfirmation) error
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}
