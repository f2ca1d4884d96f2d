package user_test

import (
	"testing"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	token := kernel.NewUUID()
	userID := kernel.NewUUID()
	expiresAt := time.Now().Add(time.Hour)

	t.Run("should create with valid parameters", func(t *testing.T) {
		session, err := user.NewSession(token, userID, expiresAt)

		require.NoError(t, err)
		require.NoError(t, session.Validate())
		assert.True(t, session.Token().IsEqual(token))
		assert.True(t, session.UserID().IsEqual(userID))
		assert.True(t, session.ExpiresAt().Equal(expiresAt))
	})

	t.Run("should fail with invalid token and userID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := user.NewSession(invalidID, invalidID, expiresAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "token")
		assert.Contains(t, err.Error(), "userId")
	})

	t.Run("should fail with zero expiry", func(t *testing.T) {
		_, err := user.NewSession(token, userID, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "expiresAt")
	})
}

func TestSession_IsExpired(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	session, err := user.NewSession(kernel.NewUUID(), kernel.NewUUID(), expiresAt)
	require.NoError(t, err)

	t.Run("should be live before expiry", func(t *testing.T) {
		assert.False(t, session.IsExpired(expiresAt.Add(-time.Second)))
	})

	t.Run("should expire exactly at expiry instant", func(t *testing.T) {
		assert.True(t, session.IsExpired(expiresAt))
	})

	t.Run("should expire after expiry", func(t *testing.T) {
		assert.True(t, session.IsExpired(expiresAt.Add(time.Second)))
	})
}

func TestSession_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var session user.Session

		assert.Equal(t, user.ErrSessionIsNotConstructed, session.Validate())
	})
}
