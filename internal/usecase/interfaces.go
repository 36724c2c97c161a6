package usecase

import (
	"context"

	"github.com/iho/finledger/internal/domain"
)

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Save(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Transaction, error)
	ListByUserAndKind(ctx context.Context, userID string, kind domain.Kind) ([]*domain.Transaction, error)
	Update(ctx context.Context, transaction *domain.Transaction) error
	Delete(ctx context.Context, id string) error
}

// UserRepository defines data access for users. GetByEmail returns (nil, nil)
// when no user has the given email; GetByID returns domain.ErrUserNotFound.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PasswordHasher applies a one-way transformation to a raw secret.
type PasswordHasher interface {
	Hash(raw string) (string, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
