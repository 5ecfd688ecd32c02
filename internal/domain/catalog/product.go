package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived:
		return true
	}
	return false
}

// Inventory tracks sellable stock. When TrackQuantity is off the
// quantity is informational and never blocks a sale.
type Inventory struct {
	Quantity       int  `gorm:"not null;default:0" json:"quantity"`
	TrackQuantity  bool `gorm:"not null;default:true" json:"trackQuantity"`
	AllowBackorder bool `gorm:"not null;default:false" json:"allowBackorder"`
}

// SEO holds the optional storefront metadata shown to crawlers.
type SEO struct {
	Title       string     `gorm:"type:varchar(200)" json:"title"`
	Description string     `gorm:"type:varchar(500)" json:"description"`
	Keywords    StringList `gorm:"type:json" json:"keywords"`
}

// Product is the catalog aggregate. New products start as unlisted
// drafts until an editor publishes them.
type Product struct {
	shared.BaseEntity
	Title        string           `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description  string           `gorm:"type:text;not null"`
	Price        decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	ComparePrice *decimal.Decimal `gorm:"type:decimal(18,2)"`
	CategoryID   *uuid.UUID       `gorm:"type:uuid;index"`
	Images       StringList       `gorm:"type:json"`
	Tags         StringList       `gorm:"type:json"`
	Status       ProductStatus    `gorm:"type:varchar(20);not null;default:'draft';index"`
	Featured     bool             `gorm:"not null;default:false;index"`
	Inventory    Inventory        `gorm:"embedded;embeddedPrefix:inventory_"`
	SEO          SEO              `gorm:"embedded;embeddedPrefix:seo_"`
}

func (Product) TableName() string {
	return "products"
}

// NewProduct creates a draft with defaults applied. Price must be
// non-negative and at least one image is required.
func NewProduct(title, description string, price decimal.Decimal, images []string) (*Product, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewValidationError("Title is required")
	}
	if len(strings.TrimSpace(description)) < 10 {
		return nil, shared.NewValidationError("Description must be at least 10 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Price must be a positive number")
	}
	if len(images) == 0 {
		return nil, shared.NewValidationError("At least one image is required")
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       title,
		Description: description,
		Price:       price,
		Images:      images,
		Status:      ProductStatusDraft,
		Featured:    false,
		Inventory: Inventory{
			TrackQuantity:  true,
			AllowBackorder: false,
		},
	}, nil
}

func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.Touch()
}

func (p *Product) SetPricing(price decimal.Decimal, comparePrice *decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewValidationError("Price must be a positive number")
	}
	if comparePrice != nil && comparePrice.LessThan(price) {
		return shared.NewValidationError("Compare price must not be below price")
	}
	p.Price = price
	p.ComparePrice = comparePrice
	p.Touch()
	return nil
}

func (p *Product) SetStatus(status ProductStatus) error {
	if !status.Valid() {
		return shared.NewValidationError("Invalid product status: " + string(status))
	}
	p.Status = status
	p.Touch()
	return nil
}

func (p *Product) SetFeatured(featured bool) {
	p.Featured = featured
	p.Touch()
}

func (p *Product) SetInventory(inv Inventory) error {
	if inv.Quantity < 0 {
		return shared.NewValidationError("Quantity must not be negative")
	}
	p.Inventory = inv
	p.Touch()
	return nil
}

// IsPurchasable reports whether the product can be added to an order.
func (p *Product) IsPurchasable() bool {
	return p.Status == ProductStatusActive
}

// InStock reports whether qty units can be sold right now.
func (p *Product) InStock(qty int) bool {
	if !p.Inventory.TrackQuantity || p.Inventory.AllowBackorder {
		return true
	}
	return p.Inventory.Quantity >= qty
}

// DecrementStock reserves qty units for an order.
func (p *Product) DecrementStock(qty int) error {
	if qty <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if !p.Inventory.TrackQuantity {
		return nil
	}
	if !p.Inventory.AllowBackorder && p.Inventory.Quantity < qty {
		return shared.NewInvalidStateError("Insufficient stock for " + p.Title)
	}
	p.Inventory.Quantity -= qty
	p.Touch()
	return nil
}

// RestoreStock returns qty units after a cancellation or refund.
func (p *Product) RestoreStock(qty int) {
	if qty <= 0 || !p.Inventory.TrackQuantity {
		return
	}
	p.Inventory.Quantity += qty
	p.Touch()
}
