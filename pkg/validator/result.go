package validator

// Result is the outcome of a single validation check.
// Error carries an opaque localization key and is empty when Valid is true.
type Result struct {
	Valid bool
	Error string
}

// Requirements describes which character classes are present in a password,
// independent of which rules are enforced.
type Requirements struct {
	HasMinLength   bool
	HasUppercase   bool
	HasLowercase   bool
	HasNumber      bool
	HasSpecialChar bool
}

// StrengthResult extends Result with the full requirement flags so a UI can
// render live strength feedback even when validation fails early.
type StrengthResult struct {
	Result
	Requirements Requirements
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(key string) Result {
	return Result{Valid: false, Error: key}
}
