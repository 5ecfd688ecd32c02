package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/order"
)

// OrderItemInput references a product at checkout. Pricing is never
// taken from the client; the service reads it from the catalog.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// ShippingInput is the delivery address collected at checkout.
type ShippingInput struct {
	Street  string `json:"street" binding:"required,max=200"`
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zipCode" binding:"max=20"`
	Country string `json:"country" binding:"required,max=100"`
}

// PlaceOrderRequest represents a checkout submission.
type PlaceOrderRequest struct {
	Items         []OrderItemInput `json:"items" binding:"required,min=1,max=50,dive"`
	Shipping      ShippingInput    `json:"shipping" binding:"required"`
	PaymentMethod string           `json:"paymentMethod" binding:"required,oneof=card paypal bank_transfer"`
	Notes         string           `json:"notes" binding:"max=1000"`
}

// UpdateStatusRequest advances an order through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled refunded"`
}

// ListOrdersQuery narrows order listings.
type ListOrdersQuery struct {
	Status string
	Page   int
	Limit  int
}

// ItemView is an order line in API responses.
type ItemView struct {
	ProductID uuid.UUID       `json:"productId"`
	Title     string          `json:"title"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type ShippingView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country"`
}

// OrderResponse is the order aggregate in API responses.
type OrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	UserID        uuid.UUID       `json:"userId"`
	Items         []ItemView      `json:"items"`
	Shipping      ShippingView    `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	Status        string          `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]ItemView, len(o.Items))
	for i, line := range o.Items {
		items[i] = ItemView{
			ProductID: line.ProductID,
			Title:     line.Title,
			Image:     line.Image,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal(),
		}
	}
	return &OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Items:       items,
		Shipping: ShippingView{
			Street:  o.Shipping.Street,
			City:    o.Shipping.City,
			State:   o.Shipping.State,
			ZipCode: o.Shipping.ZipCode,
			Country: o.Shipping.Country,
		},
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		Status:        string(o.Status),
		Subtotal:      o.Subtotal,
		ShippingCost:  o.ShippingCost,
		Total:         o.Total,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
