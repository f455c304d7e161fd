package authkit

import (
	"context"

	"github.com/appforge/authkit/pkg/validator"
)

// Storage is the persistence capability consumed by the toolkit. Values are
// opaque strings; Get must return ("", nil) for unknown keys rather than an
// error. Implementations adapt concrete backends (in-memory, Redis, device
// key-value stores) outside this package.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// UIProvider supplies theme tokens and translation to UI-adjacent callers.
type UIProvider interface {
	Theme() map[string]string
	Translate(key string, params map[string]any) string
}

// ValidationProvider overrides the detection patterns used for validation.
// When attached, it takes precedence over the Kit's merged EmailPattern.
type ValidationProvider interface {
	Rules() validator.Config
}
