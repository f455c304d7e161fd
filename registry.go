package authkit

import "sync"

var (
	registryMu sync.Mutex
	registry   *Kit
)

// Initialize creates the process-wide Kit on first call and returns it.
// Subsequent calls while a Kit exists ignore p entirely and return the
// existing instance: first-writer-wins. This keeps repeated composition-root
// runs (hot reload, test re-renders) from reconfiguring the kit underneath
// live consumers.
func Initialize(p Partial, opts ...Option) (*Kit, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if registry != nil {
		return registry, nil
	}

	k, err := New(p, opts...)
	if err != nil {
		return nil, err
	}

	registry = k
	return k, nil
}

// Current returns the process-wide Kit, or nil when Initialize has not been
// called.
func Current() *Kit {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry
}

// Reset clears the process-wide Kit. It exists for test isolation; runtime
// code must not rely on resetting a live registry.
func Reset() {
	registryMu.Lock()
	registry = nil
	registryMu.Unlock()
}
