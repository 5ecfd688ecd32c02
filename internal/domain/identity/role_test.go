package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLadderOrder(t *testing.T) {
	ladder := Roles()
	assert.Equal(t, []Role{RoleCustomer, RoleEditor, RoleManager, RoleSuperAdmin}, ladder)

	for i, lower := range ladder {
		for j, higher := range ladder {
			got := higher.AtLeast(lower)
			assert.Equal(t, j >= i, got, "%s.AtLeast(%s)", higher, lower)
		}
	}
}

func TestRoleAtLeastUnknownRole(t *testing.T) {
	assert.False(t, Role("root").AtLeast(RoleCustomer))
	assert.False(t, RoleSuperAdmin.AtLeast(Role("root")))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("manager")
	assert.NoError(t, err)
	assert.Equal(t, RoleManager, r)

	_, err = ParseRole("owner")
	assert.Error(t, err)
}
