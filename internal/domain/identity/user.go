package identity

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/backend/internal/domain/shared"
)

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Address is a postal address embedded in users and orders.
type Address struct {
	Street  string `gorm:"type:varchar(200)" json:"street"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`
	ZipCode string `gorm:"type:varchar(20)" json:"zipCode"`
	Country string `gorm:"type:varchar(100)" json:"country"`
}

// User is a storefront account. Passwords are only ever stored hashed;
// accounts created through OAuth providers may have no password at all.
type User struct {
	shared.BaseEntity
	Name         string     `gorm:"type:varchar(120);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(100)"`
	Image        string     `gorm:"type:varchar(500)"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'customer';index"`
	Phone        string     `gorm:"type:varchar(30)"`
	Address      Address    `gorm:"embedded;embeddedPrefix:address_"`
	Active       bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:""`
}

func (User) TableName() string {
	return "users"
}

// NewUser registers a customer account with a freshly hashed password.
func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, shared.NewValidationError("Name must be at least 2 characters")
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleCustomer,
		Active:       true,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", shared.NewValidationError("Please enter a valid email address")
	}
	return email, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", shared.NewValidationError("Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a login attempt against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after the current password
// has been verified.
func (u *User) ChangePassword(current, next string) error {
	if !u.VerifyPassword(current) {
		return shared.NewValidationError("Current password is incorrect")
	}
	hash, err := hashPassword(next)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// ResetPassword replaces the stored hash without the current password;
// callers must have verified a reset token first.
func (u *User) ResetPassword(next string) error {
	hash, err := hashPassword(next)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// UpdateProfile applies the fields a user may edit about themselves.
func (u *User) UpdateProfile(name, phone, image string, address *Address) error {
	if name != "" {
		name = strings.TrimSpace(name)
		if len(name) < 2 {
			return shared.NewValidationError("Name must be at least 2 characters")
		}
		u.Name = name
	}
	if phone != "" {
		u.Phone = phone
	}
	if image != "" {
		u.Image = image
	}
	if address != nil {
		u.Address = *address
	}
	u.Touch()
	return nil
}

// AssignRole promotes or demotes the account. The actor must outrank
// both the user's current role and the target role.
func (u *User) AssignRole(target Role, actor Role) error {
	if !target.Valid() {
		return shared.NewValidationError("Invalid role: " + target.String())
	}
	if !actor.AtLeast(RoleManager) {
		return shared.ErrForbidden
	}
	if target.AtLeast(actor) && actor != RoleSuperAdmin {
		return shared.NewDomainError(shared.KindForbidden, "Insufficient permissions")
	}
	u.Role = target
	u.Touch()
	return nil
}

func (u *User) RecordLogin(at time.Time) {
	at = at.UTC()
	u.LastLoginAt = &at
	u.Touch()
}

func (u *User) Deactivate() {
	u.Active = false
	u.Touch()
}

func (u *User) Activate() {
	u.Active = true
	u.Touch()
}
