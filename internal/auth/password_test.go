package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, VerifyPassword(hash, "Secret123"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "Secret123"))
}

func TestNewResetToken(t *testing.T) {
	t.Parallel()

	tok, err := NewResetToken(60)
	require.NoError(t, err)
	assert.Len(t, tok.Raw, 40) // 20 random bytes, hex encoded
	assert.False(t, tok.Exp.IsZero())

	// Hashing is deterministic and never exposes the raw token.
	h1 := HashResetRaw(tok.Raw)
	h2 := HashResetRaw(tok.Raw)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, tok.Raw, h1)

	other, err := NewResetToken(60)
	require.NoError(t, err)
	assert.NotEqual(t, tok.Raw, other.Raw)
}
