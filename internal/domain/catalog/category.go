package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Category groups products, optionally nested one level under a
// parent.
type Category struct {
	shared.BaseEntity
	Name        string         `gorm:"type:varchar(120);not null;uniqueIndex"`
	Description string         `gorm:"type:varchar(500)"`
	Image       string         `gorm:"type:varchar(500)"`
	ParentID    *uuid.UUID     `gorm:"type:uuid;index"`
	Status      CategoryStatus `gorm:"type:varchar(20);not null;default:'active'"`
	SEO         SEO            `gorm:"embedded;embeddedPrefix:seo_"`
}

func (Category) TableName() string {
	return "categories"
}

func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Status:      CategoryStatusActive,
	}, nil
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Name is required")
	}
	c.Name = name
	c.Touch()
	return nil
}

func (c *Category) SetParent(parentID *uuid.UUID) error {
	if parentID != nil && *parentID == c.ID {
		return shared.NewValidationError("Category cannot be its own parent")
	}
	c.ParentID = parentID
	c.Touch()
	return nil
}

func (c *Category) SetStatus(status CategoryStatus) error {
	if status != CategoryStatusActive && status != CategoryStatusInactive {
		return shared.NewValidationError("Invalid category status: " + string(status))
	}
	c.Status = status
	c.Touch()
	return nil
}
