package anonymous

import (
	"context"
	"sync"

	"github.com/appforge/authkit"
)

// enabledValue is the only string ever persisted; anything else reads back
// as false.
const enabledValue = "true"

// Service owns the in-memory anonymous-mode flag and the storage key it
// persists under. Safe for concurrent use.
type Service struct {
	key string

	mu   sync.Mutex
	flag bool
}

// NewService creates a service persisting under key. An empty key falls back
// to the process-wide kit's configured key, then to the package default.
func NewService(key string) *Service {
	return &Service{key: ResolveKey(key)}
}

// Key returns the storage key this service persists under.
func (s *Service) Key() string {
	return s.key
}

// IsAnonymous reports the in-memory flag. It never touches storage.
func (s *Service) IsAnonymous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flag
}

// SetAnonymous sets the in-memory flag without persisting it.
func (s *Service) SetAnonymous(v bool) {
	s.mu.Lock()
	s.flag = v
	s.mu.Unlock()
}

// Load hydrates the flag from storage. The stored literal "true" maps to
// true; any other value, a missing key or a read error all map to false.
// The error is returned for observability but the flag is already in a safe
// state, so callers may ignore it.
func (s *Service) Load(ctx context.Context, st authkit.Storage) (bool, error) {
	value, err := st.Get(ctx, s.key)
	enabled := err == nil && value == enabledValue

	s.mu.Lock()
	s.flag = enabled
	s.mu.Unlock()

	return enabled, err
}

// Save persists the current flag: "true" under the key when set, removal of
// the key when not. Removing rather than writing "false" keeps "explicitly
// off" and "never set" indistinguishable on read, which is the contract.
func (s *Service) Save(ctx context.Context, st authkit.Storage) error {
	if s.IsAnonymous() {
		return st.Set(ctx, s.key, enabledValue)
	}
	return st.Remove(ctx, s.key)
}

// Clear removes the key from storage. The in-memory flag is deliberately
// left untouched; memory and storage stay inconsistent until the next Load.
// Callers that want full clearing must also call SetAnonymous(false).
func (s *Service) Clear(ctx context.Context, st authkit.Storage) error {
	return st.Remove(ctx, s.key)
}

// Enable sets the flag and persists it in one step.
func (s *Service) Enable(ctx context.Context, st authkit.Storage) error {
	s.SetAnonymous(true)
	return s.Save(ctx, st)
}
