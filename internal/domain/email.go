package domain

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EmailAddress is a validated email. No case or whitespace normalization is
// applied beyond what the pattern permits.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates an email address against the standard
// local@domain.tld pattern.
func NewEmailAddress(email string) (EmailAddress, error) {
	if !emailRegex.MatchString(email) {
		return EmailAddress{}, ErrInvalidEmail
	}
	return EmailAddress{value: email}, nil
}

func (e EmailAddress) String() string {
	return e.value
}
