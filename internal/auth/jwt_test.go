package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mina/shiftbase/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("access-secret", "refresh-secret", 24*time.Hour, 30*24*time.Hour)
}

func TestJWTService_AccessToken(t *testing.T) {
	jwtService := newTestJWTService()

	userID := uuid.New()
	storeID := uuid.New()

	t.Run("generates valid token", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(userID, "OWNER", &storeID)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Len(t, strings.Split(token, "."), 3)

		claims, err := jwtService.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "OWNER", claims.Role)
		require.NotNil(t, claims.StoreID)
		assert.Equal(t, storeID, *claims.StoreID)
	})

	t.Run("store claim is optional", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(userID, "EMPLOYEE", nil)
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Nil(t, claims.StoreID)
	})

	t.Run("token contains issuer and subject", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(userID, "OWNER", nil)
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, "shiftbase", claims.Issuer)
		assert.Equal(t, userID.String(), claims.Subject)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		shortLived := auth.NewJWTService("access-secret", "refresh-secret", 1*time.Millisecond, time.Hour)

		token, err := shortLived.GenerateAccessToken(userID, "OWNER", nil)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = shortLived.ValidateAccessToken(token)
		assert.Equal(t, auth.ErrExpiredToken, err)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(userID, "OWNER", nil)
		require.NoError(t, err)

		_, err = jwtService.ValidateAccessToken(token + "tampered")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", "refresh-secret", 24*time.Hour, time.Hour)

		token, err := other.GenerateAccessToken(userID, "OWNER", nil)
		require.NoError(t, err)

		_, err = jwtService.ValidateAccessToken(token)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects malformed and empty tokens", func(t *testing.T) {
		_, err := jwtService.ValidateAccessToken("not-a-valid-jwt")
		assert.Equal(t, auth.ErrInvalidToken, err)

		_, err = jwtService.ValidateAccessToken("")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})
}

func TestJWTService_RefreshToken(t *testing.T) {
	jwtService := newTestJWTService()
	userID := uuid.New()

	t.Run("generates valid refresh token", func(t *testing.T) {
		token, err := jwtService.GenerateRefreshToken(userID)
		require.NoError(t, err)

		claims, err := jwtService.ValidateRefreshToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userID.String(), claims.Subject)
	})

	t.Run("refresh token is not a valid access token", func(t *testing.T) {
		token, err := jwtService.GenerateRefreshToken(userID)
		require.NoError(t, err)

		_, err = jwtService.ValidateAccessToken(token)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("access token is not a valid refresh token", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(userID, "OWNER", nil)
		require.NoError(t, err)

		_, err = jwtService.ValidateRefreshToken(token)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects expired refresh token", func(t *testing.T) {
		shortLived := auth.NewJWTService("access-secret", "refresh-secret", time.Hour, 1*time.Millisecond)

		token, err := shortLived.GenerateRefreshToken(userID)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = shortLived.ValidateRefreshToken(token)
		assert.Equal(t, auth.ErrExpiredToken, err)
	})
}
