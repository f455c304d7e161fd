package authkit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync"

	"github.com/appforge/authkit/pkg/validator"
)

// Feature identifies one of the toolkit's optional surfaces. The set is
// closed: there is no way to ask a Kit about a feature it does not know.
type Feature int

const (
	FeatureAnonymousMode Feature = iota
	FeatureRegistration
	FeaturePasswordStrength
)

func (f Feature) String() string {
	switch f {
	case FeatureAnonymousMode:
		return "anonymousMode"
	case FeatureRegistration:
		return "registration"
	case FeaturePasswordStrength:
		return "passwordStrength"
	default:
		return fmt.Sprintf("Feature(%d)", int(f))
	}
}

// Kit owns one merged Config snapshot plus the optional provider slots.
// The Config is immutable after construction; providers may be attached at
// any time. All methods are safe for concurrent use.
type Kit struct {
	config     Config
	emailRegex *regexp.Regexp
	logger     *slog.Logger

	mu         sync.RWMutex
	storage    Storage
	ui         UIProvider
	validation ValidationProvider
}

// Option configures a Kit at construction time.
type Option func(*Kit)

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kit) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// New merges p over the built-in defaults and returns a Kit owning the
// result. The configured email pattern is compiled here so a bad override
// fails at construction rather than on first validation.
func New(p Partial, opts ...Option) (*Kit, error) {
	cfg := mergeConfig(DefaultConfig(), p)

	re, err := regexp.Compile(cfg.Validation.EmailPattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidEmailPattern, err)
	}

	k := &Kit{
		config:     cfg,
		emailRegex: re,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(k)
	}

	return k, nil
}

// Config returns the merged configuration snapshot. The returned value is a
// copy; mutating it has no effect on the Kit.
func (k *Kit) Config() Config {
	return k.config
}

// FeatureEnabled reports whether the named feature is on in the merged
// config. Passing a value outside the declared Feature constants is a
// programming error and panics.
func (k *Kit) FeatureEnabled(f Feature) bool {
	switch f {
	case FeatureAnonymousMode:
		return k.config.Features.AnonymousMode
	case FeatureRegistration:
		return k.config.Features.Registration
	case FeaturePasswordStrength:
		return k.config.Features.PasswordStrength
	default:
		panic(fmt.Sprintf("authkit: unknown feature %d", int(f)))
	}
}

// ValidatorConfig returns the detection patterns active for this Kit: the
// attached ValidationProvider when present, otherwise the defaults with the
// merged email pattern applied.
func (k *Kit) ValidatorConfig() validator.Config {
	k.mu.RLock()
	vp := k.validation
	k.mu.RUnlock()

	if vp != nil {
		return vp.Rules()
	}

	cfg := validator.DefaultConfig()
	cfg.EmailRegex = k.emailRegex
	return cfg
}

// PasswordConfig returns the merged registration password policy.
func (k *Kit) PasswordConfig() validator.PasswordConfig {
	return k.config.Validation.Password
}

// SetStorageProvider attaches the persistence backend. The reference is
// stored as-is; the caller guarantees interface conformance.
func (k *Kit) SetStorageProvider(s Storage) {
	k.mu.Lock()
	k.storage = s
	k.mu.Unlock()
}

// StorageProvider returns the attached storage backend, or nil.
func (k *Kit) StorageProvider() Storage {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.storage
}

// SetUIProvider attaches the theme/translation source.
func (k *Kit) SetUIProvider(p UIProvider) {
	k.mu.Lock()
	k.ui = p
	k.mu.Unlock()
}

// UIProvider returns the attached UI provider, or nil.
func (k *Kit) UIProvider() UIProvider {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.ui
}

// SetValidationProvider attaches a custom rule source.
func (k *Kit) SetValidationProvider(p ValidationProvider) {
	k.mu.Lock()
	k.validation = p
	k.mu.Unlock()
}

// ValidationProvider returns the attached rule source, or nil.
func (k *Kit) ValidationProvider() ValidationProvider {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.validation
}

// Logger returns the Kit's logger.
func (k *Kit) Logger() *slog.Logger {
	return k.logger
}
