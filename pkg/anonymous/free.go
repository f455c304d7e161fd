package anonymous

import (
	"context"

	"github.com/appforge/authkit"
)

// ResolveKey applies the storage-key fallback chain: explicit key, then the
// process-wide kit's configured key, then the package default.
func ResolveKey(key string) string {
	if key != "" {
		return key
	}
	if kit := authkit.Current(); kit != nil {
		if k := kit.Config().StorageKeys.AnonymousMode; k != "" {
			return k
		}
	}
	return authkit.DefaultAnonymousModeKey
}

// resolveStorage falls back to the process-wide kit's storage provider when
// the caller did not pass one.
func resolveStorage(st authkit.Storage) authkit.Storage {
	if st != nil {
		return st
	}
	if kit := authkit.Current(); kit != nil {
		return kit.StorageProvider()
	}
	return nil
}

// LoadAnonymousMode reads the flag under the resolved key. Any failure,
// including missing storage, resolves to false.
func LoadAnonymousMode(ctx context.Context, st authkit.Storage, key string) bool {
	st = resolveStorage(st)
	if st == nil {
		return false
	}

	value, err := st.Get(ctx, ResolveKey(key))
	if err != nil {
		return false
	}
	return value == enabledValue
}

// SaveAnonymousMode persists the flag under the resolved key: "true" when
// enabled, key removal when not. Storage errors are swallowed.
func SaveAnonymousMode(ctx context.Context, st authkit.Storage, key string, enabled bool) {
	st = resolveStorage(st)
	if st == nil {
		return
	}

	k := ResolveKey(key)
	if enabled {
		_ = st.Set(ctx, k, enabledValue)
		return
	}
	_ = st.Remove(ctx, k)
}

// ClearAnonymousMode removes the flag under the resolved key, swallowing
// storage errors.
func ClearAnonymousMode(ctx context.Context, st authkit.Storage, key string) {
	st = resolveStorage(st)
	if st == nil {
		return
	}
	_ = st.Remove(ctx, ResolveKey(key))
}
