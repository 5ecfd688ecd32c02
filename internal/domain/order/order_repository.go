package order

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows order listings. A nil Status means no status
// predicate; UserID scopes customer views to their own orders.
type Filter struct {
	UserID *uuid.UUID
	Status *Status
	Page   int
	Limit  int
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter Filter) ([]*Order, int64, error)
	Save(ctx context.Context, order *Order) error
}
