package authprovider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/authkit/pkg/authprovider"
)

func TestMemoryProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sign up then current user", func(t *testing.T) {
		t.Parallel()
		p := authprovider.NewMemoryProvider()

		user, err := p.SignUp(ctx, "a@b.com", "Secret1!")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "a@b.com", user.Email)

		current, err := p.CurrentUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, user.ID, current.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		p := authprovider.NewMemoryProvider()

		_, err := p.SignUp(ctx, "a@b.com", "Secret1!")
		require.NoError(t, err)

		_, err = p.SignUp(ctx, "a@b.com", "Other1!")
		require.Error(t, err)

		var perr *authprovider.Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, authprovider.KindEmailInUse, perr.Kind)
	})

	t.Run("sign in error kinds", func(t *testing.T) {
		t.Parallel()
		p := authprovider.NewMemoryProvider()

		_, err := p.SignUp(ctx, "a@b.com", "Secret1!")
		require.NoError(t, err)
		require.NoError(t, p.SignOut(ctx))

		var perr *authprovider.Error

		_, err = p.SignIn(ctx, "nobody@b.com", "Secret1!")
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, authprovider.KindUserNotFound, perr.Kind)

		_, err = p.SignIn(ctx, "a@b.com", "wrong")
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, authprovider.KindWrongPassword, perr.Kind)

		p.DisableUser("a@b.com")
		_, err = p.SignIn(ctx, "a@b.com", "Secret1!")
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, authprovider.KindUserDisabled, perr.Kind)
	})

	t.Run("sign out clears session", func(t *testing.T) {
		t.Parallel()
		p := authprovider.NewMemoryProvider()

		_, err := p.SignUp(ctx, "a@b.com", "Secret1!")
		require.NoError(t, err)
		require.NoError(t, p.SignOut(ctx))

		current, err := p.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("state listener sees sign in and sign out", func(t *testing.T) {
		t.Parallel()
		p := authprovider.NewMemoryProvider()

		var states []*authprovider.User
		unsubscribe := p.OnAuthStateChange(func(user *authprovider.User) {
			states = append(states, user)
		})

		_, err := p.SignUp(ctx, "a@b.com", "Secret1!")
		require.NoError(t, err)
		require.NoError(t, p.SignOut(ctx))

		require.Len(t, states, 2)
		require.NotNil(t, states[0])
		assert.Equal(t, "a@b.com", states[0].Email)
		assert.Nil(t, states[1])

		unsubscribe()
		_, err = p.SignIn(ctx, "a@b.com", "Secret1!")
		require.NoError(t, err)
		assert.Len(t, states, 2)
	})

	t.Run("repeated sign out does not notify", func(t *testing.T) {
		t.Parallel()
		p := authprovider.NewMemoryProvider()

		var calls int
		p.OnAuthStateChange(func(*authprovider.User) { calls++ })

		require.NoError(t, p.SignOut(ctx))
		assert.Zero(t, calls)
	})
}
