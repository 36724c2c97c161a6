package domain

import "strings"

// Kind classifies a transaction as income or expense.
type Kind string

const (
	// KindIncome marks money coming in.
	KindIncome Kind = "INCOME"

	// KindExpense marks money going out.
	KindExpense Kind = "EXPENSE"
)

var validKinds = map[Kind]bool{
	KindIncome:  true,
	KindExpense: true,
}

// ParseKind parses a transaction kind from a case-insensitive string.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToUpper(s))
	if !validKinds[kind] {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// IsValid checks if the kind is one of the closed set.
func (k Kind) IsValid() bool {
	return validKinds[k]
}

// IsIncome reports whether the kind is INCOME.
func (k Kind) IsIncome() bool {
	return k == KindIncome
}

// IsExpense reports whether the kind is EXPENSE.
func (k Kind) IsExpense() bool {
	return k == KindExpense
}

// String returns the canonical uppercase tag.
func (k Kind) String() string {
	return string(k)
}
