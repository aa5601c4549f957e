package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "redress/internal/domain/user/valueobjects"
	"redress/internal/shared/authorization"
)

func testEmail(t *testing.T) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail("jordan@example.com")
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	t.Run("assigns a uuid", func(t *testing.T) {
		u, err := NewUser("Jordan Smith", testEmail(t), "$2a$12$hash", authorization.RoleUser)
		require.NoError(t, err)

		assert.Zero(t, u.ID())
		assert.NotEmpty(t, u.UUID())
		assert.Equal(t, authorization.RoleUser, u.Role())

		other, err := NewUser("Sam Lee", testEmail(t), "$2a$12$hash", authorization.RoleStaff)
		require.NoError(t, err)
		assert.NotEqual(t, u.UUID(), other.UUID())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewUser("", testEmail(t), "$2a$12$hash", authorization.RoleUser)
		assert.Error(t, err)
		_, err = NewUser("Jordan", nil, "$2a$12$hash", authorization.RoleUser)
		assert.Error(t, err)
		_, err = NewUser("Jordan", testEmail(t), "", authorization.RoleUser)
		assert.Error(t, err)
		_, err = NewUser("Jordan", testEmail(t), "$2a$12$hash", authorization.UserRole("root"))
		assert.Error(t, err)
	})
}

func TestUser_ChangePasswordHash(t *testing.T) {
	u, err := NewUser("Jordan Smith", testEmail(t), "old-hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.ChangePasswordHash("new-hash"))
	assert.Equal(t, "new-hash", u.PasswordHash())
	assert.Error(t, u.ChangePasswordHash(""))
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("Jordan Smith", testEmail(t), "hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.SetID(1))
	assert.Error(t, u.SetID(2))
	assert.Equal(t, uint(1), u.ID())
}
