package validator

import "strings"

// DisplayName validates a user-facing display name. Length is measured on
// the trimmed value.
func DisplayName(name string, minLength int) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return invalid(KeyNameRequired)
	}
	if len(trimmed) < minLength {
		return invalid(KeyNameTooShort)
	}
	return valid()
}
