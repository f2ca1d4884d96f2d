package user_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create buyer with valid parameters", func(t *testing.T) {
		u, err := user.NewUser(validID, "Ada", "Lovelace", "ada@example.com", testHash, "+123", user.Buyer)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "Ada", u.FirstName())
		assert.Equal(t, "Lovelace", u.LastName())
		assert.Equal(t, "ada@example.com", u.Email())
		assert.Equal(t, testHash, u.PasswordHash())
		assert.Equal(t, "+123", u.Phone())
		assert.Equal(t, user.Buyer, u.Role())
	})

	t.Run("should default unknown role to buyer", func(t *testing.T) {
		u, err := user.NewUser(validID, "Ada", "Lovelace", "ada@example.com", testHash, "", user.RoleUnknown)

		require.NoError(t, err)
		assert.Equal(t, user.Buyer, u.Role())
	})

	t.Run("should fail with missing required fields", func(t *testing.T) {
		_, err := user.NewUser(validID, "", "", "", "", "", user.Merchant)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "firstName")
		assert.Contains(t, err.Error(), "lastName")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "passwordHash")
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := user.NewUser(invalidID, "Ada", "Lovelace", "ada@example.com", testHash, "", user.Buyer)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestUser_ChangeName(t *testing.T) {
	newTestUser := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser(kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", testHash, "", user.Buyer)
		require.NoError(t, err)
		return u
	}

	t.Run("should update both parts", func(t *testing.T) {
		u := newTestUser(t)

		require.NoError(t, u.ChangeName("Grace", "Hopper"))
		assert.Equal(t, "Grace", u.FirstName())
		assert.Equal(t, "Hopper", u.LastName())
	})

	t.Run("should reject empty parts and keep current name", func(t *testing.T) {
		u := newTestUser(t)

		err := u.ChangeName("", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "firstName")
		assert.Contains(t, err.Error(), "lastName")
		assert.Equal(t, "Ada", u.FirstName())
		assert.Equal(t, "Lovelace", u.LastName())
	})
}

func TestUser_ChangePhone(t *testing.T) {
	t.Run("should set and clear phone", func(t *testing.T) {
		u, _ := user.NewUser(kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", testHash, "+1", user.Buyer)

		u.ChangePhone("+2")
		assert.Equal(t, "+2", u.Phone())

		u.ChangePhone("")
		assert.Empty(t, u.Phone())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value", func(t *testing.T) {
		var nilUser *user.User
		var zeroUser user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, nilUser.Validate())
		assert.Equal(t, user.ErrUserIsNotConstructed, zeroUser.Validate())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid names", func(t *testing.T) {
		for s, expected := range map[string]user.Role{
			"buyer":    user.Buyer,
			"merchant": user.Merchant,
			"admin":    user.Admin,
		} {
			role, err := user.RoleFromString(s)

			require.NoError(t, err)
			assert.Equal(t, expected, role)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := user.RoleFromString("superuser")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
