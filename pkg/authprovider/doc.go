// Package authprovider defines the boundary to the external identity
// provider (Firebase Authentication or an equivalent) and maps its string
// error codes onto a closed set of domain error kinds.
//
// The toolkit only consumes this interface; it never implements the auth
// protocol itself. Provider failures carry "auth/..." style codes which
// Classify resolves against a static table built once at init, with
// KindUnknown as the explicit fallback for codes the table does not know.
// Each kind resolves to a stable localization key so forms can display
// translated messages without inspecting provider internals.
package authprovider
