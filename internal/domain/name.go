package domain

import "strings"

// PersonName is a non-empty display name.
type PersonName struct {
	value string
}

// NewPersonName validates a display name. Whitespace-only names are rejected;
// the value itself is kept as given.
func NewPersonName(name string) (PersonName, error) {
	if strings.TrimSpace(name) == "" {
		return PersonName{}, ErrInvalidName
	}
	return PersonName{value: name}, nil
}

func (n PersonName) String() string {
	return n.value
}
