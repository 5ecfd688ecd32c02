package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  Ada Lovelace ", "Ada@Example.COM", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, RoleCustomer, user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, user.VerifyPassword("secret1"))
	assert.False(t, user.VerifyPassword("secret2"))
}

func TestNewUserValidation(t *testing.T) {
	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"short name", "A", "a@example.com", "secret1"},
		{"bad email", "Ada", "not-an-email", "secret1"},
		{"short password", "Ada", "a@example.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.userName, tc.email, tc.password)
			assert.True(t, shared.IsKind(err, shared.KindValidation))
		})
	}
}

func TestChangePassword(t *testing.T) {
	user, err := NewUser("Ada", "a@example.com", "secret1")
	require.NoError(t, err)

	err = user.ChangePassword("wrong", "another1")
	assert.True(t, shared.IsKind(err, shared.KindValidation))
	assert.True(t, user.VerifyPassword("secret1"))

	require.NoError(t, user.ChangePassword("secret1", "another1"))
	assert.True(t, user.VerifyPassword("another1"))
}

func TestVerifyPasswordWithoutHash(t *testing.T) {
	user := &User{}
	assert.False(t, user.VerifyPassword("anything"))
}

func TestAssignRole(t *testing.T) {
	user, err := NewUser("Ada", "a@example.com", "secret1")
	require.NoError(t, err)

	// customers and editors cannot grant roles at all
	err = user.AssignRole(RoleEditor, RoleEditor)
	assert.True(t, shared.IsKind(err, shared.KindForbidden))

	// a manager can grant editor but not manager or above
	require.NoError(t, user.AssignRole(RoleEditor, RoleManager))
	assert.Equal(t, RoleEditor, user.Role)

	err = user.AssignRole(RoleManager, RoleManager)
	assert.True(t, shared.IsKind(err, shared.KindForbidden))

	// super admins can grant anything
	require.NoError(t, user.AssignRole(RoleSuperAdmin, RoleSuperAdmin))
	assert.Equal(t, RoleSuperAdmin, user.Role)
}

func TestPasswordResetTokenLifecycle(t *testing.T) {
	userID := uuid.New()
	token, secret, err := NewPasswordResetToken(userID, time.Hour)
	require.NoError(t, err)

	assert.Len(t, secret, 64)
	assert.Equal(t, HashResetToken(secret), token.TokenHash)
	assert.NotEqual(t, secret, token.TokenHash)

	require.NoError(t, token.Consume(time.Now()))
	err = token.Consume(time.Now())
	assert.True(t, shared.IsKind(err, shared.KindValidation))
}

func TestPasswordResetTokenExpiry(t *testing.T) {
	token, _, err := NewPasswordResetToken(uuid.New(), time.Hour)
	require.NoError(t, err)

	err = token.Consume(time.Now().Add(2 * time.Hour))
	assert.True(t, shared.IsKind(err, shared.KindValidation))
	assert.Nil(t, token.UsedAt)
}
