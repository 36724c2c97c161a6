package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// TransactionRepository implements transaction persistence on PostgreSQL.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Save inserts a new transaction. Id uniqueness is enforced by the primary
// key.
func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			transaction.ID(),
			transaction.UserID(),
			transaction.Kind().String(),
			transaction.Amount().Decimal(),
			transaction.Description().String(),
			transaction.CreatedAt(),
		)
		return err
	})
}

// GetByID retrieves a transaction by id.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, user_id, kind, amount, description, created_at
		FROM transactions
		WHERE id = $1
	`

	transaction, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	return transaction, err
}

// ListByUser retrieves all transactions owned by a user, oldest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	query := `
		SELECT id, user_id, kind, amount, description, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListByUserAndKind retrieves a user's transactions of a given kind, oldest
// first.
func (r *TransactionRepository) ListByUserAndKind(ctx context.Context, userID string, kind domain.Kind) ([]*domain.Transaction, error) {
	query := `
		SELECT id, user_id, kind, amount, description, created_at
		FROM transactions
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID, kind.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Update replaces the stored row wholesale. Ownership is not re-checked at
// this level.
func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET user_id = $2, kind = $3, amount = $4, description = $5, created_at = $6
		WHERE id = $1
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			transaction.ID(),
			transaction.UserID(),
			transaction.Kind().String(),
			transaction.Amount().Decimal(),
			transaction.Description().String(),
			transaction.CreatedAt(),
		)
		return err
	})
}

// Delete removes a transaction. Deleting an absent id is not an error.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM transactions WHERE id = $1`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query, id)
		return err
	})
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		id          string
		userID      string
		kindTag     string
		amount      decimal.Decimal
		description string
		createdAt   time.Time
	)

	if err := row.Scan(&id, &userID, &kindTag, &amount, &description, &createdAt); err != nil {
		return nil, err
	}

	kind, err := domain.ParseKind(kindTag)
	if err != nil {
		return nil, err
	}

	value, err := domain.NewAmountFromDecimal(amount)
	if err != nil {
		return nil, err
	}

	text, err := domain.NewDescription(description)
	if err != nil {
		return nil, err
	}

	return domain.NewTransaction(id, userID, kind, value, text, createdAt)
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
