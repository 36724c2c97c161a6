package domain

import "unicode"

// MinPasswordLength is the minimum raw password length.
const MinPasswordLength = 8

// Password is a raw credential that satisfies the composite policy: minimum
// length plus at least one uppercase, lowercase, digit and special character.
// It only exists to validate format before hashing; the raw value is never
// persisted.
type Password struct {
	value string
}

// NewPassword validates a raw password against the policy.
func NewPassword(raw string) (Password, error) {
	if len(raw) < MinPasswordLength {
		return Password{}, ErrInvalidPassword
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return Password{}, ErrInvalidPassword
	}

	return Password{value: raw}, nil
}

// Raw returns the validated secret for hashing.
func (p Password) Raw() string {
	return p.value
}
