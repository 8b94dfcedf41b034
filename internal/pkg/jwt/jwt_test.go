//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"expertbook/internal/domain/user"
	"expertbook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *jwt.Service {
	return jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
}

// ===== TestTokens =====

func TestTokens(t *testing.T) {
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		svc := newService()
		token, err := svc.GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, user.RoleClient.String(), claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token carries its own type", func(t *testing.T) {
		svc := newService()
		token, err := svc.GenerateRefreshToken(userID, user.RoleExpert)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
		assert.Equal(t, user.RoleExpert.String(), claims.Role)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		_, err := newService().ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: wrong signing key", func(t *testing.T) {
		token, err := newService().GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		other := jwt.NewService("a-different-secret", 15*time.Minute, time.Hour)
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: expired token", func(t *testing.T) {
		svc := jwt.NewService("test-secret-key", -time.Minute, time.Hour)
		token, err := svc.GenerateAccessToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("configured durations are exposed", func(t *testing.T) {
		svc := newService()
		assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
		assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
	})
}
