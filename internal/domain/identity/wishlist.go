package identity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem links a user to a product they saved. The pair is
// unique; adding twice is a conflict.
type WishlistItem struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

func NewWishlistItem(userID, productID uuid.UUID) *WishlistItem {
	return &WishlistItem{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
}
