package authkit

import "errors"

var (
	// ErrInvalidEmailPattern is returned when the configured email pattern
	// does not compile.
	ErrInvalidEmailPattern = errors.New("authkit: invalid email pattern")

	// ErrParsingEnv is returned when environment variables cannot be parsed
	// into a config partial.
	ErrParsingEnv = errors.New("authkit: failed to parse environment config")
)
