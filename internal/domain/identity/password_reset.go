package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// PasswordResetToken is a single-use, time-boxed credential for the
// forgot-password flow. Only a hash of the token is stored; the raw
// value goes out once, in the email link.
type PasswordResetToken struct {
	shared.BaseEntity
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenHash string     `gorm:"type:char(64);not null;uniqueIndex"`
	ExpiresAt time.Time  `gorm:"not null"`
	UsedAt    *time.Time `gorm:""`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// NewPasswordResetToken mints a token for the user and returns the
// raw secret alongside the persistable record.
func NewPasswordResetToken(userID uuid.UUID, ttl time.Duration) (*PasswordResetToken, string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", err
	}
	secret := hex.EncodeToString(raw)
	return &PasswordResetToken{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		TokenHash:  HashResetToken(secret),
		ExpiresAt:  time.Now().UTC().Add(ttl),
	}, secret, nil
}

// HashResetToken maps a raw token to its stored form.
func HashResetToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Consume marks the token used. Expired or already-used tokens fail.
func (t *PasswordResetToken) Consume(now time.Time) error {
	if t.UsedAt != nil {
		return shared.NewValidationError("Reset token has already been used")
	}
	if now.After(t.ExpiresAt) {
		return shared.NewValidationError("Reset token has expired")
	}
	now = now.UTC()
	t.UsedAt = &now
	t.Touch()
	return nil
}
