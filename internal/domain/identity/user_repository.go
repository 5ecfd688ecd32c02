package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserFilter narrows admin user listings. Zero values mean "no
// constraint"; pagination is normalized by the caller.
type UserFilter struct {
	Search string
	Role   Role
	Page   int
	Limit  int
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PasswordResetRepository interface {
	Save(ctx context.Context, token *PasswordResetToken) error
	FindByHash(ctx context.Context, tokenHash string) (*PasswordResetToken, error)
	DeleteForUser(ctx context.Context, userID uuid.UUID) error
}

type WishlistRepository interface {
	Add(ctx context.Context, item *WishlistItem) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
