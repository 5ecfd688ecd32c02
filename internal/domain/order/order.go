package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// transitions lists the legal next states for each status. Terminal
// states have no entry.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusRefunded},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentBankTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Item is a priced line frozen at checkout time. Title and unit price
// are copied from the product so later catalog edits do not rewrite
// order history.
type Item struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"productId"`
	Title     string          `gorm:"type:varchar(200);not null" json:"title"`
	Image     string          `gorm:"type:varchar(500)" json:"image"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unitPrice"`
}

func (Item) TableName() string {
	return "order_items"
}

func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the purchase aggregate. Items are immutable after
// placement; only status and payment status advance.
type Order struct {
	shared.BaseEntity
	OrderNumber   string           `gorm:"type:varchar(40);not null;uniqueIndex"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Items         []Item           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipping      identity.Address `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod PaymentMethod    `gorm:"type:varchar(20);not null"`
	PaymentStatus PaymentStatus    `gorm:"type:varchar(20);not null;default:'pending'"`
	Status        Status           `gorm:"type:varchar(20);not null;default:'pending';index"`
	Subtotal      decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	ShippingCost  decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Total         decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Notes         string           `gorm:"type:varchar(1000)"`
}

func (Order) TableName() string {
	return "orders"
}

// freeShippingThreshold and flatShippingCost match the storefront's
// checkout rules.
var (
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingCost      = decimal.NewFromInt(10)
)

// NewOrder places an order for the given priced items. Totals are
// computed here so they cannot drift from the lines.
func NewOrder(userID uuid.UUID, items []Item, shipping identity.Address, method PaymentMethod) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewValidationError("Order must contain at least one item")
	}
	if !method.Valid() {
		return nil, shared.NewValidationError("Invalid payment method: " + string(method))
	}
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, shared.NewValidationError("Quantity must be positive")
		}
	}

	base := shared.NewBaseEntity()
	subtotal := decimal.Zero
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].OrderID = base.ID
		subtotal = subtotal.Add(items[i].LineTotal())
	}

	shippingCost := flatShippingCost
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		shippingCost = decimal.Zero
	}

	number, err := newOrderNumber(base.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &Order{
		BaseEntity:    base,
		OrderNumber:   number,
		UserID:        userID,
		Items:         items,
		Shipping:      shipping,
		PaymentMethod: method,
		PaymentStatus: PaymentStatusPending,
		Status:        StatusPending,
		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		Total:         subtotal.Add(shippingCost),
	}, nil
}

func newOrderNumber(at time.Time) (string, error) {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%s", at.UTC().Format("20060102"), hex.EncodeToString(suffix)), nil
}

// UpdateStatus advances the order along the legal transition graph.
func (o *Order) UpdateStatus(next Status) error {
	if !next.Valid() {
		return shared.NewValidationError("Invalid order status: " + string(next))
	}
	if !o.Status.CanTransitionTo(next) {
		return shared.NewInvalidStateError(
			fmt.Sprintf("Cannot change order status from %s to %s", o.Status, next))
	}
	o.Status = next
	if next == StatusRefunded {
		o.PaymentStatus = PaymentStatusRefunded
	}
	o.Touch()
	return nil
}

// MarkPaid records a successful payment.
func (o *Order) MarkPaid() {
	o.PaymentStatus = PaymentStatusPaid
	o.Touch()
}

// Cancellable reports whether stock should be restored when the order
// moves to cancelled.
func (o *Order) Cancellable() bool {
	return o.Status.CanTransitionTo(StatusCancelled)
}
