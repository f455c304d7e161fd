package authkit

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// envConfig maps AUTHKIT_* environment variables onto config partial leaves.
// Pointer fields stay nil when the variable is absent, which is exactly the
// "absent keeps the default" semantic of Partial.
type envConfig struct {
	AnonymousModeKey *string `env:"AUTHKIT_STORAGE_KEY_ANONYMOUS"`
	ShowRegisterKey  *string `env:"AUTHKIT_STORAGE_KEY_SHOW_REGISTER"`

	EmailPattern       *string `env:"AUTHKIT_EMAIL_PATTERN"`
	PasswordMinLength  *int    `env:"AUTHKIT_PASSWORD_MIN_LENGTH"`
	RequireUppercase   *bool   `env:"AUTHKIT_PASSWORD_REQUIRE_UPPERCASE"`
	RequireLowercase   *bool   `env:"AUTHKIT_PASSWORD_REQUIRE_LOWERCASE"`
	RequireNumber      *bool   `env:"AUTHKIT_PASSWORD_REQUIRE_NUMBER"`
	RequireSpecialChar *bool   `env:"AUTHKIT_PASSWORD_REQUIRE_SPECIAL"`

	Theme  *string `env:"AUTHKIT_UI_THEME"`
	Locale *string `env:"AUTHKIT_UI_LOCALE"`

	FeatureAnonymousMode    *bool `env:"AUTHKIT_FEATURE_ANONYMOUS_MODE"`
	FeatureRegistration     *bool `env:"AUTHKIT_FEATURE_REGISTRATION"`
	FeaturePasswordStrength *bool `env:"AUTHKIT_FEATURE_PASSWORD_STRENGTH"`
}

// PartialFromEnv builds a Partial from AUTHKIT_* environment variables,
// loading a .env file first if one exists. Variables that are not set leave
// the corresponding leaves absent, so the result composes with defaults
// through the usual merge path:
//
//	p, err := authkit.PartialFromEnv()
//	kit, err := authkit.New(p)
func PartialFromEnv() (Partial, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Partial{}, errors.Join(ErrParsingEnv, err)
	}

	var p Partial

	if ec.AnonymousModeKey != nil || ec.ShowRegisterKey != nil {
		p.StorageKeys = &StorageKeysPartial{
			AnonymousMode: ec.AnonymousModeKey,
			ShowRegister:  ec.ShowRegisterKey,
		}
	}

	password := &PasswordPartial{
		MinLength:          ec.PasswordMinLength,
		RequireUppercase:   ec.RequireUppercase,
		RequireLowercase:   ec.RequireLowercase,
		RequireNumber:      ec.RequireNumber,
		RequireSpecialChar: ec.RequireSpecialChar,
	}
	hasPassword := ec.PasswordMinLength != nil || ec.RequireUppercase != nil ||
		ec.RequireLowercase != nil || ec.RequireNumber != nil || ec.RequireSpecialChar != nil
	if ec.EmailPattern != nil || hasPassword {
		p.Validation = &ValidationPartial{EmailPattern: ec.EmailPattern}
		if hasPassword {
			p.Validation.Password = password
		}
	}

	if ec.Theme != nil || ec.Locale != nil {
		p.UI = &UIPartial{Theme: ec.Theme, Locale: ec.Locale}
	}

	if ec.FeatureAnonymousMode != nil || ec.FeatureRegistration != nil || ec.FeaturePasswordStrength != nil {
		p.Features = &FeaturesPartial{
			AnonymousMode:    ec.FeatureAnonymousMode,
			Registration:     ec.FeatureRegistration,
			PasswordStrength: ec.FeaturePasswordStrength,
		}
	}

	return p, nil
}
