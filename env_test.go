package authkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/authkit"
)

// Environment tests mutate process env via t.Setenv, so they are not parallel.

func TestPartialFromEnv(t *testing.T) {
	t.Run("no variables yields empty partial", func(t *testing.T) {
		p, err := authkit.PartialFromEnv()
		require.NoError(t, err)

		assert.Nil(t, p.StorageKeys)
		assert.Nil(t, p.Validation)
		assert.Nil(t, p.UI)
		assert.Nil(t, p.Features)
	})

	t.Run("set variables land in the partial", func(t *testing.T) {
		t.Setenv("AUTHKIT_STORAGE_KEY_ANONYMOUS", "env.guest")
		t.Setenv("AUTHKIT_PASSWORD_MIN_LENGTH", "14")
		t.Setenv("AUTHKIT_PASSWORD_REQUIRE_SPECIAL", "false")
		t.Setenv("AUTHKIT_FEATURE_REGISTRATION", "false")

		p, err := authkit.PartialFromEnv()
		require.NoError(t, err)

		require.NotNil(t, p.StorageKeys)
		require.NotNil(t, p.StorageKeys.AnonymousMode)
		assert.Equal(t, "env.guest", *p.StorageKeys.AnonymousMode)
		assert.Nil(t, p.StorageKeys.ShowRegister)

		require.NotNil(t, p.Validation)
		require.NotNil(t, p.Validation.Password)
		require.NotNil(t, p.Validation.Password.MinLength)
		assert.Equal(t, 14, *p.Validation.Password.MinLength)
		require.NotNil(t, p.Validation.Password.RequireSpecialChar)
		assert.False(t, *p.Validation.Password.RequireSpecialChar)
		assert.Nil(t, p.Validation.Password.RequireUppercase)

		require.NotNil(t, p.Features)
		require.NotNil(t, p.Features.Registration)
		assert.False(t, *p.Features.Registration)
		assert.Nil(t, p.Features.AnonymousMode)

		// The partial composes with defaults through the normal merge.
		kit, err := authkit.New(p)
		require.NoError(t, err)
		cfg := kit.Config()
		assert.Equal(t, "env.guest", cfg.StorageKeys.AnonymousMode)
		assert.Equal(t, 14, cfg.Validation.Password.MinLength)
		assert.True(t, cfg.Validation.Password.RequireUppercase)
		assert.False(t, cfg.Features.Registration)
	})

	t.Run("malformed values surface as parse errors", func(t *testing.T) {
		t.Setenv("AUTHKIT_PASSWORD_MIN_LENGTH", "not-a-number")

		_, err := authkit.PartialFromEnv()
		require.Error(t, err)
		assert.ErrorIs(t, err, authkit.ErrParsingEnv)
	})
}
