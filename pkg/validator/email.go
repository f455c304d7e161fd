package validator

import "strings"

// Email validates email shape against cfg.EmailRegex. The check is purely
// syntactic; no DNS or deliverability lookup is performed.
func Email(email string, cfg Config) Result {
	if strings.TrimSpace(email) == "" {
		return invalid(KeyEmailRequired)
	}
	if !cfg.EmailRegex.MatchString(email) {
		return invalid(KeyInvalidEmail)
	}
	return valid()
}
