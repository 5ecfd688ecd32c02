package identity

import "github.com/storefront/backend/internal/domain/shared"

// Role is the single ordered permission ladder. Every role inherits
// everything below it.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleEditor     Role = "editor"
	RoleManager    Role = "manager"
	RoleSuperAdmin Role = "super_admin"
)

var roleRank = map[Role]int{
	RoleCustomer:   0,
	RoleEditor:     1,
	RoleManager:    2,
	RoleSuperAdmin: 3,
}

// ParseRole validates an externally supplied role name.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if !r.Valid() {
		return "", shared.NewValidationError("Invalid role: " + raw)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// AtLeast reports whether r meets or exceeds min on the ladder.
// Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	minRank, ok := roleRank[min]
	if !ok {
		return false
	}
	return rank >= minRank
}

// Roles lists the valid roles in ascending order of privilege.
func Roles() []Role {
	return []Role{RoleCustomer, RoleEditor, RoleManager, RoleSuperAdmin}
}
