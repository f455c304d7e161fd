package validator

// PasswordForLogin accepts any non-empty password. Strength rules are a
// registration-time concern; login validates an existing credential and must
// not reject it for failing a policy introduced later.
func PasswordForLogin(password string) Result {
	if password == "" {
		return invalid(KeyPasswordRequired)
	}
	return valid()
}

// PasswordForRegister checks a new password against pc using the detection
// patterns in cfg. The requirement flags are always fully computed, even on
// failure paths, so callers can render a complete strength checklist.
// Enforcement short-circuits at the first failure in a fixed order: required,
// length, then uppercase, lowercase, number and special character for
// whichever flags pc enables.
func PasswordForRegister(password string, pc PasswordConfig, cfg Config) StrengthResult {
	req := Requirements{
		HasMinLength:   len(password) >= pc.MinLength,
		HasUppercase:   cfg.UppercaseRegex.MatchString(password),
		HasLowercase:   cfg.LowercaseRegex.MatchString(password),
		HasNumber:      cfg.DigitRegex.MatchString(password),
		HasSpecialChar: cfg.SpecialCharRegex.MatchString(password),
	}

	res := StrengthResult{Requirements: req}

	switch {
	case password == "":
		res.Result = invalid(KeyPasswordRequired)
	case !req.HasMinLength:
		res.Result = invalid(KeyPasswordTooShort)
	case pc.RequireUppercase && !req.HasUppercase:
		res.Result = invalid(KeyPasswordRequiresUppercase)
	case pc.RequireLowercase && !req.HasLowercase:
		res.Result = invalid(KeyPasswordRequiresLowercase)
	case pc.RequireNumber && !req.HasNumber:
		res.Result = invalid(KeyPasswordRequiresNumber)
	case pc.RequireSpecialChar && !req.HasSpecialChar:
		res.Result = invalid(KeyPasswordRequiresSpecial)
	default:
		res.Result = valid()
	}

	return res
}

// PasswordConfirmation compares raw strings with no normalization; the check
// is case- and whitespace-sensitive on purpose.
func PasswordConfirmation(password, confirm string) Result {
	if confirm == "" {
		return invalid(KeyConfirmPasswordRequired)
	}
	if password != confirm {
		return invalid(KeyPasswordsDoNotMatch)
	}
	return valid()
}
