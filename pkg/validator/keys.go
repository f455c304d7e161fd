package validator

// Localization keys reported by validation results. Callers resolve them
// through their translation layer; the values are stable contract, not
// display text.
const (
	KeyEmailRequired             = "auth.validation.emailRequired"
	KeyInvalidEmail              = "auth.validation.invalidEmail"
	KeyPasswordRequired          = "auth.validation.passwordRequired"
	KeyPasswordTooShort          = "auth.validation.passwordTooShort"
	KeyPasswordRequiresUppercase = "auth.validation.passwordRequiresUppercase"
	KeyPasswordRequiresLowercase = "auth.validation.passwordRequiresLowercase"
	KeyPasswordRequiresNumber    = "auth.validation.passwordRequiresNumber"
	KeyPasswordRequiresSpecial   = "auth.validation.passwordRequiresSpecialChar"
	KeyConfirmPasswordRequired   = "auth.validation.confirmPasswordRequired"
	KeyPasswordsDoNotMatch       = "auth.validation.passwordsDoNotMatch"
	KeyNameRequired              = "auth.validation.nameRequired"
	KeyNameTooShort              = "auth.validation.nameTooShort"
)
