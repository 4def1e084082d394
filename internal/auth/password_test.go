package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("admin123")
	require.NoError(t, err)
	second, err := h.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "hashes must be salted")
	assert.True(t, h.Check("admin123", first))
	assert.True(t, h.Check("admin123", second))
	assert.False(t, h.Check("admin124", first))
	assert.False(t, h.Check("", first))
}

func TestHasherMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	assert.False(t, h.Check("admin123", "not-a-bcrypt-hash"))
	assert.False(t, h.Check("admin123", ""))
}

func TestNewHasherDefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
}
