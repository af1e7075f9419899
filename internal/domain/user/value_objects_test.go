//go:build unit

package user_test

import (
	"testing"

	"flexin/internal/domain/user"
	"flexin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Taro Yamada", actual.Name().Value())
		assert.Equal(t, "taro@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleMember, actual.Role())
		assert.False(t, actual.IsVerified())
	})
}

func TestEmail(t *testing.T) {
	t.Run("accepts valid addresses and trims whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  taro@example.com ")
		require.NoError(t, err)
		assert.Equal(t, "taro@example.com", email.Value())
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		for _, s := range []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"} {
			_, err := user.NewEmail(s)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "input: %q", s)
		}
	})
}

func TestPassword(t *testing.T) {
	t.Run("accepts eight characters or more", func(t *testing.T) {
		p, err := user.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := user.NewName("  Taro  ")
		require.NoError(t, err)
		assert.Equal(t, "Taro", name.Value())
	})

	t.Run("rejects empty names", func(t *testing.T) {
		for _, s := range []string{"", "   "} {
			_, err := user.NewName(s)
			assert.ErrorIs(t, err, user.ErrEmptyName, "input: %q", s)
		}
	})
}

func TestRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		role, err := user.NewRole("admin")
		require.NoError(t, err)
		assert.True(t, role.IsAdmin())

		role, err = user.NewRole("member")
		require.NoError(t, err)
		assert.False(t, role.IsAdmin())
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := user.NewRole("owner")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("maps the admin flag", func(t *testing.T) {
		assert.Equal(t, user.RoleAdmin, user.RoleForAdmin(true))
		assert.Equal(t, user.RoleMember, user.RoleForAdmin(false))
	})
}
