package domain

import (
	"strings"
	"time"
)

// Transaction is a single income or expense entry owned by a user. All
// attributes are immutable once built; correcting a transaction means
// replacing it wholesale through the store's update capability.
type Transaction struct {
	id          string
	userID      string
	kind        Kind
	amount      Amount
	description Description
	createdAt   time.Time
}

// NewTransaction builds a transaction from already-validated value objects.
// The id and user id are trimmed and must be non-empty. A zero createdAt
// defaults to the current time.
func NewTransaction(id, userID string, kind Kind, amount Amount, description Description, createdAt time.Time) (*Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrTransactionIDEmpty
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserIDEmpty
	}

	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &Transaction{
		id:          id,
		userID:      userID,
		kind:        kind,
		amount:      amount,
		description: description,
		createdAt:   createdAt,
	}, nil
}

// ID returns the caller-supplied identity. Uniqueness is a store concern.
func (t *Transaction) ID() string {
	return t.id
}

// UserID returns the owning user's id.
func (t *Transaction) UserID() string {
	return t.userID
}

// Kind returns the transaction classification.
func (t *Transaction) Kind() Kind {
	return t.kind
}

// Amount returns the monetary value.
func (t *Transaction) Amount() Amount {
	return t.amount
}

// Description returns the transaction description.
func (t *Transaction) Description() Description {
	return t.description
}

// CreatedAt returns the creation timestamp.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// IsIncome reports whether the transaction is an income entry.
func (t *Transaction) IsIncome() bool {
	return t.kind.IsIncome()
}

// IsExpense reports whether the transaction is an expense entry.
func (t *Transaction) IsExpense() bool {
	return t.kind.IsExpense()
}

// FormattedAmount renders the amount with a leading sign and currency prefix,
// e.g. "+R$ 1000.00" or "-R$ 300.50".
func (t *Transaction) FormattedAmount() string {
	prefix := "-"
	if t.IsIncome() {
		prefix = "+"
	}
	return prefix + "R$ " + t.amount.String()
}
