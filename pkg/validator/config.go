package validator

import "regexp"

// DefaultEmailPattern is a pragmatic email shape for form input:
// local@domain.tld with no internal whitespace. Deliverability is not
// checked here.
const DefaultEmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var (
	defaultEmailRegex = regexp.MustCompile(DefaultEmailPattern)

	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// PasswordConfig describes which password-strength rules are enforced at
// registration time. It is an immutable value object; copy and modify to
// derive variants. MinLength applies regardless of which character-class
// flags are set.
type PasswordConfig struct {
	MinLength          int
	RequireUppercase   bool
	RequireLowercase   bool
	RequireNumber      bool
	RequireSpecialChar bool
}

// DefaultPasswordConfig returns the default registration policy:
// 8+ characters with every character class required.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength:          8,
		RequireUppercase:   true,
		RequireLowercase:   true,
		RequireNumber:      true,
		RequireSpecialChar: true,
	}
}

// Config holds the detection patterns used by the validation functions.
// It is swappable independently of PasswordConfig so callers can customize
// how character classes are detected without touching enforcement flags.
type Config struct {
	EmailRegex       *regexp.Regexp
	UppercaseRegex   *regexp.Regexp
	LowercaseRegex   *regexp.Regexp
	DigitRegex       *regexp.Regexp
	SpecialCharRegex *regexp.Regexp

	// MinDisplayNameLength is the minimum trimmed length for display names.
	MinDisplayNameLength int
}

// DefaultConfig returns the default detection patterns.
func DefaultConfig() Config {
	return Config{
		EmailRegex:           defaultEmailRegex,
		UppercaseRegex:       uppercaseRegex,
		LowercaseRegex:       lowercaseRegex,
		DigitRegex:           digitRegex,
		SpecialCharRegex:     specialCharRegex,
		MinDisplayNameLength: 2,
	}
}
