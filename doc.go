// Package authkit is the configuration core of a client-side authentication
// toolkit: validation rules, storage keys, feature flags and provider slots,
// merged once from defaults plus a caller-supplied partial override.
//
// The package is glue, not an auth protocol. The actual identity provider
// (Firebase or equivalent), the UI layer and the persistence backend are
// external collaborators reached through the narrow interfaces in this
// package; authkit only carries the configuration and wiring they share.
//
// # Configuration merge
//
// A Kit is constructed from a Partial overlaying built-in defaults. The merge
// is an explicit field-by-field overlay per nested group, two levels deep for
// validation rules, so overriding one leaf never erases its siblings:
//
//	kit, err := authkit.New(authkit.Partial{
//		Validation: &authkit.ValidationPartial{
//			Password: &authkit.PasswordPartial{MinLength: authkit.Int(12)},
//		},
//	})
//	// kit.Config().Validation.Password.RequireLowercase is still the default.
//
// The merged Config is computed once at construction and immutable afterward;
// only the provider slots may be attached later.
//
// # Process-wide registry
//
// Initialize, Current and Reset manage one shared Kit for code paths that
// cannot thread a reference explicitly. Initialize is first-writer-wins: the
// partial passed to any call after the first is ignored, so repeated app-root
// mounts cannot reconfigure the kit underneath live consumers. Reset exists
// for test isolation only. Code that can take a *Kit parameter should prefer
// explicit injection over the registry.
package authkit
