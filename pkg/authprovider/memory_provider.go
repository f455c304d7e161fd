package authprovider

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type account struct {
	user     User
	password string
	disabled bool
}

// MemoryProvider is an in-memory Provider implementation for testing and
// local development. Passwords are compared in plain text; it must never
// back a real deployment.
type MemoryProvider struct {
	mu        sync.Mutex
	accounts  map[string]*account // keyed by email
	current   *User
	listeners map[uuid.UUID]StateListener
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		accounts:  make(map[string]*account),
		listeners: make(map[uuid.UUID]StateListener),
	}
}

// SignUp creates an account and signs it in.
func (m *MemoryProvider) SignUp(ctx context.Context, email, password string) (*User, error) {
	m.mu.Lock()

	if _, exists := m.accounts[email]; exists {
		m.mu.Unlock()
		return nil, NewError("auth/email-already-in-use", nil)
	}

	user := User{ID: uuid.New().String(), Email: email}
	m.accounts[email] = &account{user: user, password: password}
	m.current = &user
	m.mu.Unlock()

	m.notify(&user)
	return &user, nil
}

// SignIn authenticates against a stored account.
func (m *MemoryProvider) SignIn(ctx context.Context, email, password string) (*User, error) {
	m.mu.Lock()

	acc, exists := m.accounts[email]
	switch {
	case !exists:
		m.mu.Unlock()
		return nil, NewError("auth/user-not-found", nil)
	case acc.disabled:
		m.mu.Unlock()
		return nil, NewError("auth/user-disabled", nil)
	case acc.password != password:
		m.mu.Unlock()
		return nil, NewError("auth/wrong-password", nil)
	}

	user := acc.user
	m.current = &user
	m.mu.Unlock()

	m.notify(&user)
	return &user, nil
}

// SignOut ends the current session. Signing out without a session is a
// no-op.
func (m *MemoryProvider) SignOut(ctx context.Context) error {
	m.mu.Lock()
	hadSession := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if hadSession {
		m.notify(nil)
	}
	return nil
}

// CurrentUser returns the signed-in user or nil.
func (m *MemoryProvider) CurrentUser(ctx context.Context) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, nil
	}
	user := *m.current
	return &user, nil
}

// OnAuthStateChange registers fn for sign-in/sign-out transitions.
func (m *MemoryProvider) OnAuthStateChange(fn StateListener) func() {
	id := uuid.New()

	m.mu.Lock()
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// DisableUser marks an account disabled, for exercising the user-disabled
// error path in tests.
func (m *MemoryProvider) DisableUser(email string) {
	m.mu.Lock()
	if acc, ok := m.accounts[email]; ok {
		acc.disabled = true
	}
	m.mu.Unlock()
}

func (m *MemoryProvider) notify(user *User) {
	m.mu.Lock()
	snapshot := make([]StateListener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		snapshot = append(snapshot, fn)
	}
	m.mu.Unlock()

	for _, fn := range snapshot {
		fn(user)
	}
}
