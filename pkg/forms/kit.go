package forms

import (
	"github.com/appforge/authkit"
	"github.com/appforge/authkit/pkg/validator"
)

// The kit-aware helpers validate with the rules a Kit carries: the attached
// validation provider or merged email pattern, and the merged password
// policy. A nil kit falls back to the package defaults.

func kitConfigs(kit *authkit.Kit) (validator.PasswordConfig, validator.Config) {
	if kit == nil {
		return validator.DefaultPasswordConfig(), validator.DefaultConfig()
	}
	return kit.PasswordConfig(), kit.ValidatorConfig()
}

// ValidateLogin validates f with kit's active rules.
func ValidateLogin(kit *authkit.Kit, f LoginForm) Errors {
	_, cfg := kitConfigs(kit)
	return f.Validate(cfg)
}

// ValidateRegister validates f with kit's active rules and password policy.
func ValidateRegister(kit *authkit.Kit, f RegisterForm) (Errors, validator.Requirements) {
	pc, cfg := kitConfigs(kit)
	return f.Validate(pc, cfg)
}

// ValidateProfile validates f with kit's active rules.
func ValidateProfile(kit *authkit.Kit, f ProfileForm) Errors {
	_, cfg := kitConfigs(kit)
	return f.Validate(cfg)
}
