package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redress/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 15, 7)

	pair, err := service.Generate("uuid-123", authorization.RoleStaff)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := service.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "uuid-123", claims.UserUUID)
	assert.Equal(t, authorization.RoleStaff, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := service.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTService_Verify_RejectsBadTokens(t *testing.T) {
	service := NewJWTService("test-secret", 15, 7)

	t.Run("garbage input", func(t *testing.T) {
		_, err := service.Verify("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", 15, 7)
		pair, err := other.Generate("uuid-123", authorization.RoleUser)
		require.NoError(t, err)

		_, err = service.Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTService("test-secret", -1, 7)
		pair, err := expired.Generate("uuid-123", authorization.RoleUser)
		require.NoError(t, err)

		_, err = service.Verify(pair.AccessToken)
		assert.Error(t, err)
	})
}

func TestJWTService_Refresh(t *testing.T) {
	service := NewJWTService("test-secret", 15, 7)

	pair, err := service.Generate("uuid-123", authorization.RoleUser)
	require.NoError(t, err)

	t.Run("rotates a refresh token", func(t *testing.T) {
		rotated, err := service.Refresh(pair.RefreshToken)
		require.NoError(t, err)

		claims, err := service.Verify(rotated.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "uuid-123", claims.UserUUID)
		assert.Equal(t, authorization.RoleUser, claims.Role)
	})

	t.Run("rejects an access token", func(t *testing.T) {
		_, err := service.Refresh(pair.AccessToken)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a refresh token")
	})
}
