package auth_test

import (
	"strings"
	"testing"

	"github.com/mina/shiftbase/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("verify roundtrip", func(t *testing.T) {
		hash, err := auth.HashPassword("Pass1234")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "Pass1234", hash)

		assert.True(t, auth.CheckPassword("Pass1234", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		hash, err := auth.HashPassword("Pass1234")
		require.NoError(t, err)

		assert.False(t, auth.CheckPassword("pass1234", hash))
		assert.False(t, auth.CheckPassword("", hash))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		h1, err := auth.HashPassword("Pass1234")
		require.NoError(t, err)
		h2, err := auth.HashPassword("Pass1234")
		require.NoError(t, err)

		assert.NotEqual(t, h1, h2)
	})

	t.Run("uses cost factor 12", func(t *testing.T) {
		hash, err := auth.HashPassword("Pass1234")
		require.NoError(t, err)

		// bcrypt hashes encode the cost in the prefix
		assert.True(t, strings.HasPrefix(hash, "$2a$12$"))
	})
}
