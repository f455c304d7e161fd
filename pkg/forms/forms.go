package forms

import (
	"github.com/appforge/authkit/pkg/validator"
)

// Field names used as keys in the error maps.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldDisplayName     = "displayName"
)

// Errors maps field names to localization keys. An empty map means the form
// is valid.
type Errors map[string]string

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the localization key for field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// IsEmpty reports whether the form passed validation.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

func (e Errors) add(field string, res validator.Result) {
	if !res.Valid {
		e[field] = res.Error
	}
}

// LoginForm carries the login screen's input.
type LoginForm struct {
	Email    string
	Password string
}

// Validate checks every field and returns the collected errors. The password
// check only requires presence; strength is a registration concern.
func (f LoginForm) Validate(cfg validator.Config) Errors {
	errs := make(Errors)
	errs.add(FieldEmail, validator.Email(f.Email, cfg))
	errs.add(FieldPassword, validator.PasswordForLogin(f.Password))
	return errs
}

// RegisterForm carries the registration screen's input.
type RegisterForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	DisplayName     string
}

// Validate checks every field against the registration policy. The returned
// requirement flags are always fully computed, valid or not, so the UI can
// render the strength checklist alongside any field errors.
func (f RegisterForm) Validate(pc validator.PasswordConfig, cfg validator.Config) (Errors, validator.Requirements) {
	errs := make(Errors)
	errs.add(FieldEmail, validator.Email(f.Email, cfg))

	strength := validator.PasswordForRegister(f.Password, pc, cfg)
	errs.add(FieldPassword, strength.Result)

	errs.add(FieldConfirmPassword, validator.PasswordConfirmation(f.Password, f.ConfirmPassword))
	errs.add(FieldDisplayName, validator.DisplayName(f.DisplayName, cfg.MinDisplayNameLength))

	return errs, strength.Requirements
}

// ProfileForm carries the profile screen's editable input.
type ProfileForm struct {
	DisplayName string
}

// Validate checks the display name.
func (f ProfileForm) Validate(cfg validator.Config) Errors {
	errs := make(Errors)
	errs.add(FieldDisplayName, validator.DisplayName(f.DisplayName, cfg.MinDisplayNameLength))
	return errs
}
