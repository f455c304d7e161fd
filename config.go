package authkit

import (
	"github.com/appforge/authkit/pkg/validator"
)

// Default storage keys for client-local flags.
const (
	DefaultAnonymousModeKey = "auth.anonymousMode"
	DefaultShowRegisterKey  = "auth.showRegister"
)

// StorageKeys names the keys under which client-local flags are persisted.
type StorageKeys struct {
	AnonymousMode string
	ShowRegister  string
}

// ValidationConfig groups the validation rule knobs.
type ValidationConfig struct {
	// EmailPattern is the regular expression used for email shape checks.
	EmailPattern string
	Password     validator.PasswordConfig
}

// UIConfig carries opaque references resolved by the UI layer.
type UIConfig struct {
	Theme  string
	Locale string
}

// Features holds the toggles for optional authentication surfaces.
type Features struct {
	AnonymousMode    bool
	Registration     bool
	PasswordStrength bool
}

// Config is the fully merged configuration owned by a Kit.
type Config struct {
	StorageKeys StorageKeys
	Validation  ValidationConfig
	UI          UIConfig
	Features    Features
}

// DefaultConfig returns the built-in defaults every Kit starts from.
func DefaultConfig() Config {
	return Config{
		StorageKeys: StorageKeys{
			AnonymousMode: DefaultAnonymousModeKey,
			ShowRegister:  DefaultShowRegisterKey,
		},
		Validation: ValidationConfig{
			EmailPattern: validator.DefaultEmailPattern,
			Password:     validator.DefaultPasswordConfig(),
		},
		UI: UIConfig{
			Locale: "en",
		},
		Features: Features{
			AnonymousMode:    true,
			Registration:     true,
			PasswordStrength: true,
		},
	}
}

// Partial is a deep-partial Config override. Nil groups and nil leaves keep
// their defaults; pointer leaves distinguish "absent" from the zero value.
type Partial struct {
	StorageKeys *StorageKeysPartial
	Validation  *ValidationPartial
	UI          *UIPartial
	Features    *FeaturesPartial
}

type StorageKeysPartial struct {
	AnonymousMode *string
	ShowRegister  *string
}

type ValidationPartial struct {
	EmailPattern *string
	Password     *PasswordPartial
}

type PasswordPartial struct {
	MinLength          *int
	RequireUppercase   *bool
	RequireLowercase   *bool
	RequireNumber      *bool
	RequireSpecialChar *bool
}

type UIPartial struct {
	Theme  *string
	Locale *string
}

type FeaturesPartial struct {
	AnonymousMode    *bool
	Registration     *bool
	PasswordStrength *bool
}

// Pointer helpers for building Partial literals.

func String(v string) *string { return &v }
func Int(v int) *int          { return &v }
func Bool(v bool) *bool       { return &v }

// mergeConfig overlays p onto def group by group. Each group has its own
// merge function so the semantics stay statically checkable; there is no
// reflective deep-merge.
func mergeConfig(def Config, p Partial) Config {
	def.StorageKeys = mergeStorageKeys(def.StorageKeys, p.StorageKeys)
	def.Validation = mergeValidation(def.Validation, p.Validation)
	def.UI = mergeUI(def.UI, p.UI)
	def.Features = mergeFeatures(def.Features, p.Features)
	return def
}

func mergeStorageKeys(def StorageKeys, p *StorageKeysPartial) StorageKeys {
	if p == nil {
		return def
	}
	if p.AnonymousMode != nil {
		def.AnonymousMode = *p.AnonymousMode
	}
	if p.ShowRegister != nil {
		def.ShowRegister = *p.ShowRegister
	}
	return def
}

func mergeValidation(def ValidationConfig, p *ValidationPartial) ValidationConfig {
	if p == nil {
		return def
	}
	if p.EmailPattern != nil {
		def.EmailPattern = *p.EmailPattern
	}
	def.Password = mergePassword(def.Password, p.Password)
	return def
}

func mergePassword(def validator.PasswordConfig, p *PasswordPartial) validator.PasswordConfig {
	if p == nil {
		return def
	}
	if p.MinLength != nil {
		def.MinLength = *p.MinLength
	}
	if p.RequireUppercase != nil {
		def.RequireUppercase = *p.RequireUppercase
	}
	if p.RequireLowercase != nil {
		def.RequireLowercase = *p.RequireLowercase
	}
	if p.RequireNumber != nil {
		def.RequireNumber = *p.RequireNumber
	}
	if p.RequireSpecialChar != nil {
		def.RequireSpecialChar = *p.RequireSpecialChar
	}
	return def
}

func mergeUI(def UIConfig, p *UIPartial) UIConfig {
	if p == nil {
		return def
	}
	if p.Theme != nil {
		def.Theme = *p.Theme
	}
	if p.Locale != nil {
		def.Locale = *p.Locale
	}
	return def
}

func mergeFeatures(def Features, p *FeaturesPartial) Features {
	if p == nil {
		return def
	}
	if p.AnonymousMode != nil {
		def.AnonymousMode = *p.AnonymousMode
	}
	if p.Registration != nil {
		def.Registration = *p.Registration
	}
	if p.PasswordStrength != nil {
		def.PasswordStrength = *p.PasswordStrength
	}
	return def
}
