package memory

import (
	"context"
	"sync"

	"github.com/iho/finledger/internal/domain"
)

// TransactionRepository is a list-backed in-memory transaction store. Any
// persistent store with the same contract is substitutable.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
}

// NewTransactionRepository creates an empty in-memory transaction store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Save appends a transaction. Id collisions are a caller concern.
func (r *TransactionRepository) Save(_ context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, transaction)
	return nil
}

// GetByID returns the transaction with the given id.
func (r *TransactionRepository) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// ListByUser returns all transactions owned by the user, in insertion order.
func (r *TransactionRepository) ListByUser(_ context.Context, userID string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.Transaction
	for _, t := range r.transactions {
		if t.UserID() == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

// ListByUserAndKind returns the user's transactions of the given kind.
func (r *TransactionRepository) ListByUserAndKind(_ context.Context, userID string, kind domain.Kind) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.Transaction
	for _, t := range r.transactions {
		if t.UserID() == userID && t.Kind() == kind {
			result = append(result, t)
		}
	}
	return result, nil
}

// Update replaces the stored transaction with the same id. Updating an
// unknown id is a no-op.
func (r *TransactionRepository) Update(_ context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.transactions {
		if t.ID() == transaction.ID() {
			r.transactions[i] = transaction
			break
		}
	}
	return nil
}

// Delete removes the transaction with the given id. Deleting an absent id is
// not an error.
func (r *TransactionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.transactions[:0]
	for _, t := range r.transactions {
		if t.ID() != id {
			kept = append(kept, t)
		}
	}
	r.transactions = kept
	return nil
}
