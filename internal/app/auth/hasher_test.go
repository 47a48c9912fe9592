package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/pkg/errs"
)

func TestBcryptHasher(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost)

	for _, pw := range []string{"secret1", "correct horse battery", "mot-de-passe-été"} {
		hash, err := h.Hash(pw)
		require.NoError(t, err)
		assert.NotContains(t, hash, pw)
		assert.True(t, h.Verify(pw, hash))
		assert.False(t, h.Verify(pw+"x", hash))
	}

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "hashes must be salted")

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))

	_, err = h.Hash(strings.Repeat("x", 73))
	assert.Equal(t, errs.ErrInvalidPassword, errs.CodeOf(err))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := auth.NewBcryptHasher(99)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
