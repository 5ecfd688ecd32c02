package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

// RegisterRequest represents a registration attempt. ConfirmPassword
// is checked against Password at the validation boundary.
type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=120"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest starts the reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the reset flow
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// ChangePasswordRequest changes the password of a logged-in user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// AddressInput mirrors the embedded address value object
type AddressInput struct {
	Street  string `json:"street" binding:"max=200"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zipCode" binding:"max=20"`
	Country string `json:"country" binding:"max=100"`
}

// UpdateProfileRequest represents a self-service profile update
type UpdateProfileRequest struct {
	Name    string        `json:"name" binding:"omitempty,min=2,max=120"`
	Phone   string        `json:"phone" binding:"omitempty,max=30"`
	Image   string        `json:"image" binding:"omitempty,url"`
	Address *AddressInput `json:"address"`
}

// UpdateRoleRequest assigns a new role to a user
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=customer editor manager super_admin"`
}

// ListUsersQuery narrows admin user listings
type ListUsersQuery struct {
	Search string
	Role   string
	Page   int
	Limit  int
}

// AddWishlistRequest adds a product to the wishlist
type AddWishlistRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}

// UserResponse represents a user in API responses. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Image       string       `json:"image,omitempty"`
	Role        string       `json:"role"`
	Phone       string       `json:"phone,omitempty"`
	Address     *AddressView `json:"address,omitempty"`
	Active      bool         `json:"active"`
	LastLoginAt *time.Time   `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type AddressView struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// AuthResponse bundles the user with a fresh token pair
type AuthResponse struct {
	User   *UserResponse   `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

func toUserResponse(u *identity.User) *UserResponse {
	resp := &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Image:       u.Image,
		Role:        u.Role.String(),
		Phone:       u.Phone,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
	if u.Address != (identity.Address{}) {
		resp.Address = &AddressView{
			Street:  u.Address.Street,
			City:    u.Address.City,
			State:   u.Address.State,
			ZipCode: u.Address.ZipCode,
			Country: u.Address.Country,
		}
	}
	return resp
}
