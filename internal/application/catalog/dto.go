package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Title        string           `json:"title" binding:"required,min=1,max=200"`
	Description  string           `json:"description" binding:"required,min=10,max=5000"`
	Price        decimal.Decimal  `json:"price" binding:"required"`
	ComparePrice *decimal.Decimal `json:"comparePrice"`
	CategoryID   *uuid.UUID       `json:"categoryId"`
	Images       []string         `json:"images" binding:"required,min=1,max=10,dive,url"`
	Tags         []string         `json:"tags" binding:"max=20"`
	Status       *string          `json:"status" binding:"omitempty,oneof=draft active archived"`
	Featured     *bool            `json:"featured"`
	Inventory    *InventoryInput  `json:"inventory"`
	SEO          *SEOInput        `json:"seo"`
}

// UpdateProductRequest represents a partial product update. Nil means
// leave the field untouched.
type UpdateProductRequest struct {
	Title        *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string          `json:"description" binding:"omitempty,min=10,max=5000"`
	Price        *decimal.Decimal `json:"price"`
	ComparePrice *decimal.Decimal `json:"comparePrice"`
	CategoryID   *uuid.UUID       `json:"categoryId"`
	Images       []string         `json:"images" binding:"omitempty,min=1,max=10,dive,url"`
	Tags         []string         `json:"tags" binding:"omitempty,max=20"`
	Status       *string          `json:"status" binding:"omitempty,oneof=draft active archived"`
	Featured     *bool            `json:"featured"`
	Inventory    *InventoryInput  `json:"inventory"`
	SEO          *SEOInput        `json:"seo"`
}

// InventoryInput mirrors the embedded inventory value object.
type InventoryInput struct {
	Quantity       int   `json:"quantity" binding:"min=0"`
	TrackQuantity  *bool `json:"trackQuantity"`
	AllowBackorder *bool `json:"allowBackorder"`
}

// SEOInput mirrors the embedded SEO value object.
type SEOInput struct {
	Title       string   `json:"title" binding:"max=200"`
	Description string   `json:"description" binding:"max=500"`
	Keywords    []string `json:"keywords" binding:"max=20"`
}

// ListProductsQuery captures the public and admin listing parameters.
// Admin toggles whether non-active products are visible and whether a
// status filter is honored.
type ListProductsQuery struct {
	Search   string
	Category *uuid.UUID
	Status   *string
	Featured *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
	Page     int
	Limit    int
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"comparePrice,omitempty"`
	CategoryID   *uuid.UUID       `json:"categoryId,omitempty"`
	Images       []string         `json:"images"`
	Tags         []string         `json:"tags"`
	Status       string           `json:"status"`
	Featured     bool             `json:"featured"`
	Inventory    InventoryView    `json:"inventory"`
	SEO          *SEOView         `json:"seo,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type InventoryView struct {
	Quantity       int  `json:"quantity"`
	TrackQuantity  bool `json:"trackQuantity"`
	AllowBackorder bool `json:"allowBackorder"`
	InStock        bool `json:"inStock"`
}

type SEOView struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// NewProductResponse maps the aggregate to its API shape. Exported so
// other application services (wishlists, orders) can render products.
func NewProductResponse(p *catalog.Product) *ProductResponse {
	return toProductResponse(p)
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		CategoryID:   p.CategoryID,
		Images:       p.Images,
		Tags:         p.Tags,
		Status:       string(p.Status),
		Featured:     p.Featured,
		Inventory: InventoryView{
			Quantity:       p.Inventory.Quantity,
			TrackQuantity:  p.Inventory.TrackQuantity,
			AllowBackorder: p.Inventory.AllowBackorder,
			InStock:        p.InStock(1),
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if p.SEO.Title != "" || p.SEO.Description != "" || len(p.SEO.Keywords) > 0 {
		resp.SEO = &SEOView{
			Title:       p.SEO.Title,
			Description: p.SEO.Description,
			Keywords:    p.SEO.Keywords,
		}
	}
	return resp
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=120"`
	Description string     `json:"description" binding:"max=500"`
	Image       string     `json:"image" binding:"omitempty,url"`
	ParentID    *uuid.UUID `json:"parentId"`
	SEO         *SEOInput  `json:"seo"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
	Image       *string    `json:"image" binding:"omitempty,url"`
	ParentID    *uuid.UUID `json:"parentId"`
	Status      *string    `json:"status" binding:"omitempty,oneof=active inactive"`
	SEO         *SEOInput  `json:"seo"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		ParentID:    c.ParentID,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
