package domain

import "strings"

// MaxDescriptionLength is the limit applied after trimming.
const MaxDescriptionLength = 255

// Description is a non-empty trimmed text of at most 255 characters.
type Description struct {
	value string
}

// NewDescription trims and validates a description.
func NewDescription(text string) (Description, error) {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return Description{}, ErrDescriptionEmpty
	}

	if len(trimmed) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}

	return Description{value: trimmed}, nil
}

func (d Description) String() string {
	return d.value
}
