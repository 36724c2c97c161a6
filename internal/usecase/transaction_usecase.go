package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// TransactionUseCase handles transaction business logic.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	userRepo        UserRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository, userRepo UserRepository) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	ID          string
	UserID      string
	Kind        string
	Amount      float64
	Description string
}

// CreateTransaction records a new income or expense entry for an existing
// user. Every step is a hard stop: nothing is persisted unless all
// validations pass.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) error {
	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		return err
	}

	kind, err := domain.ParseKind(input.Kind)
	if err != nil {
		return err
	}

	amount, err := domain.NewAmount(input.Amount)
	if err != nil {
		return err
	}

	description, err := domain.NewDescription(input.Description)
	if err != nil {
		return err
	}

	transaction, err := domain.NewTransaction(input.ID, input.UserID, kind, amount, description, time.Time{})
	if err != nil {
		return err
	}

	return uc.transactionRepo.Save(ctx, transaction)
}

// DeleteTransactionInput represents input for deleting a transaction.
type DeleteTransactionInput struct {
	TransactionID string
	UserID        string
}

// DeleteTransaction removes a transaction after checking the user exists, the
// transaction exists, and the caller owns it. Existence is checked before
// ownership so the two failure modes stay distinguishable.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, input DeleteTransactionInput) error {
	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		return err
	}

	transaction, err := uc.transactionRepo.GetByID(ctx, input.TransactionID)
	if err != nil {
		return err
	}

	if transaction.UserID() != input.UserID {
		return domain.ErrTransactionNotOwned
	}

	return uc.transactionRepo.Delete(ctx, input.TransactionID)
}

// ListUserTransactionsInput represents input for listing transactions.
// Kind is optional; when set it filters the result case-insensitively.
type ListUserTransactionsInput struct {
	UserID string
	Kind   string
}

// ListUserTransactionsOutput carries the transactions plus their aggregates.
type ListUserTransactionsOutput struct {
	Transactions  []*domain.Transaction
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// ListUserTransactions fetches a user's transactions, optionally filtered by
// kind, and computes income/expense totals and the balance. An empty result
// set yields zero aggregates.
func (uc *TransactionUseCase) ListUserTransactions(ctx context.Context, input ListUserTransactionsInput) (*ListUserTransactionsOutput, error) {
	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	var transactions []*domain.Transaction
	var err error

	if input.Kind != "" {
		kind, kindErr := domain.ParseKind(input.Kind)
		if kindErr != nil {
			return nil, kindErr
		}
		transactions, err = uc.transactionRepo.ListByUserAndKind(ctx, input.UserID, kind)
	} else {
		transactions, err = uc.transactionRepo.ListByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, t := range transactions {
		if t.IsIncome() {
			totalIncome = totalIncome.Add(t.Amount().Decimal())
		} else {
			totalExpenses = totalExpenses.Add(t.Amount().Decimal())
		}
	}

	return &ListUserTransactionsOutput{
		Transactions:  transactions,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
	}, nil
}
