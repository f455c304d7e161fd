package authprovider

import "context"

// User is the provider-agnostic view of an authenticated user.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Anonymous   bool
}

// StateListener observes auth state transitions. user is nil when the
// session ended.
type StateListener func(user *User)

// Provider is the contract an external identity provider adapter must
// satisfy. All blocking operations take a context; errors should be *Error
// values so callers can classify them.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignUp(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in user, or nil without error when
	// no session exists.
	CurrentUser(ctx context.Context) (*User, error)

	// OnAuthStateChange registers a listener invoked on every sign-in and
	// sign-out. The returned closure removes the listener.
	OnAuthStateChange(fn StateListener) func()
}
