package authprovider

import "fmt"

// Kind is the closed set of domain error categories an identity provider
// failure maps onto. KindUnknown is the explicit fallback for unmapped codes.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmailInUse
	KindInvalidEmail
	KindWeakPassword
	KindUserNotFound
	KindWrongPassword
	KindUserDisabled
	KindInvalidCredential
	KindRequiresRecentLogin
)

func (k Kind) String() string {
	switch k {
	case KindEmailInUse:
		return "email-in-use"
	case KindInvalidEmail:
		return "invalid-email"
	case KindWeakPassword:
		return "weak-password"
	case KindUserNotFound:
		return "user-not-found"
	case KindWrongPassword:
		return "wrong-password"
	case KindUserDisabled:
		return "user-disabled"
	case KindInvalidCredential:
		return "invalid-credential"
	case KindRequiresRecentLogin:
		return "requires-recent-login"
	default:
		return "unknown"
	}
}

// LocalizationKey returns the stable translation key for this kind.
func (k Kind) LocalizationKey() string {
	switch k {
	case KindEmailInUse:
		return "auth.errors.emailInUse"
	case KindInvalidEmail:
		return "auth.errors.invalidEmail"
	case KindWeakPassword:
		return "auth.errors.weakPassword"
	case KindUserNotFound:
		return "auth.errors.userNotFound"
	case KindWrongPassword:
		return "auth.errors.wrongPassword"
	case KindUserDisabled:
		return "auth.errors.userDisabled"
	case KindInvalidCredential:
		return "auth.errors.invalidCredential"
	case KindRequiresRecentLogin:
		return "auth.errors.requiresRecentLogin"
	default:
		return "auth.errors.unknown"
	}
}

// codeKinds is the static mapping from provider error codes to kinds,
// constructed once. Codes follow the "auth/..." convention of Firebase-style
// providers.
var codeKinds = map[string]Kind{
	"auth/email-already-in-use":  KindEmailInUse,
	"auth/invalid-email":         KindInvalidEmail,
	"auth/weak-password":         KindWeakPassword,
	"auth/user-not-found":        KindUserNotFound,
	"auth/wrong-password":        KindWrongPassword,
	"auth/user-disabled":         KindUserDisabled,
	"auth/invalid-credential":    KindInvalidCredential,
	"auth/requires-recent-login": KindRequiresRecentLogin,
}

// Classify maps a provider error code onto its Kind, falling back to
// KindUnknown for codes outside the table.
func Classify(code string) Kind {
	if kind, ok := codeKinds[code]; ok {
		return kind
	}
	return KindUnknown
}

// Error is a classified identity-provider failure. Code preserves the raw
// provider code for logging; Kind and the localization key are what callers
// should branch on.
type Error struct {
	Kind Kind
	Code string
	Err  error
}

// NewError classifies code and wraps cause.
func NewError(code string, cause error) *Error {
	return &Error{
		Kind: Classify(code),
		Code: code,
		Err:  cause,
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authprovider: %s (%s): %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("authprovider: %s (%s)", e.Kind, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// LocalizationKey returns the translation key for the error's kind.
func (e *Error) LocalizationKey() string {
	return e.Kind.LocalizationKey()
}
