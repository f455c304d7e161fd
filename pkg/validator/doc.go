// Package validator provides pure, synchronous validation for authentication
// form input: email shape, password strength, password confirmation and
// display names.
//
// Validation failures are reported as result values carrying opaque
// localization keys, never as errors. The caller resolves keys into
// human-readable text through its own translation layer, which keeps this
// package free of locale concerns.
//
// Password validation is deliberately asymmetric: login accepts any non-empty
// password because it validates an existing credential, while registration
// enforces the configured strength rules. Registration always computes the
// full set of requirement flags regardless of which rules are enforced, so a
// UI can render a live strength checklist without special-casing disabled
// rules.
//
// Basic usage:
//
//	res := validator.Email("user@example.com", validator.DefaultConfig())
//	if !res.Valid {
//		msg := translate(res.Error) // e.g. "auth.validation.invalidEmail"
//	}
//
//	strength := validator.PasswordForRegister(password,
//		validator.DefaultPasswordConfig(), validator.DefaultConfig())
//	renderChecklist(strength.Requirements)
package validator
