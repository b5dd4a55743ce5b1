package auth

import "unicode"

const minPasswordLength = 8

// ValidatePassword returns the list of reasons a password is unacceptable,
// empty when it passes. Rules: at least 8 characters and not entirely
// numeric.
func ValidatePassword(password string) []string {
	var problems []string

	if len(password) < minPasswordLength {
		problems = append(problems, "This password is too short. It must contain at least 8 characters.")
	}

	allDigits := len(password) > 0
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		problems = append(problems, "This password is entirely numeric.")
	}

	return problems
}
