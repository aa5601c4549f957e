package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Verify("secret123", hash))
	assert.Error(t, hasher.Verify("wrong-pass", hash))
}

func TestBcryptPasswordHasher_UniformError(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	wrongPassword := hasher.Verify("wrong-pass", hash)
	malformedHash := hasher.Verify("secret123", "not-a-bcrypt-hash")

	require.Error(t, wrongPassword)
	require.Error(t, malformedHash)
	assert.Equal(t, wrongPassword.Error(), malformedHash.Error())
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of
	// failing at hash time.
	for _, cost := range []int{-1, 0, 100} {
		hasher := NewBcryptPasswordHasher(cost)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	}
}
