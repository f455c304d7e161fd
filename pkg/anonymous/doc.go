// Package anonymous tracks the client-local "anonymous mode" flag: whether
// the user is running the app without a permanent identity.
//
// The flag lives in two places only: in a Service instance and, persisted,
// under a single configurable storage key holding the literal string "true".
// Absence of the key means the flag is off; there is no tombstone value and
// no schema versioning. Instances share no state, so two services with the
// same key converge only through storage.
//
// The package-level functions (LoadAnonymousMode, SaveAnonymousMode,
// ClearAnonymousMode) swallow every storage error and resolve to a safe
// default. An authentication-adjacent local flag must never crash the app
// because the storage backend hiccuped. Service methods return the error for
// callers that want to observe it, but the read path still treats any failure
// as "not anonymous".
package anonymous
