package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
	"github.com/iho/finledger/internal/usecase/mocks"
)

func newTestUser(t *testing.T, id, email string) *domain.User {
	t.Helper()

	name, err := domain.NewPersonName("Test User")
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	address, err := domain.NewEmailAddress(email)
	if err != nil {
		t.Fatalf("email: %v", err)
	}
	user, err := domain.NewUser(id, name, address, "$2a$10$hash", time.Time{})
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	return user
}

func newTestTransaction(t *testing.T, id, userID string, kind domain.Kind, amount float64) *domain.Transaction {
	t.Helper()

	value, err := domain.NewAmount(amount)
	if err != nil {
		t.Fatalf("amount: %v", err)
	}
	description, err := domain.NewDescription("test entry")
	if err != nil {
		t.Fatalf("description: %v", err)
	}
	transaction, err := domain.NewTransaction(id, userID, kind, value, description, time.Time{})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}
	return transaction
}

func TestTransactionUseCase_CreateTransaction(t *testing.T) {
	tests := []struct {
		name       string
		input      usecase.CreateTransactionInput
		setupMocks func(*mocks.MockTransactionRepository, *mocks.MockUserRepository)
		wantErr    error
	}{
		{
			name: "successful create",
			input: usecase.CreateTransactionInput{
				ID:          "t1",
				UserID:      "u1",
				Kind:        "income",
				Amount:      1000,
				Description: "salary",
			},
			setupMocks: func(txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
				txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "user not found stops before save",
			input: usecase.CreateTransactionInput{
				ID:          "t1",
				UserID:      "ghost",
				Kind:        "income",
				Amount:      1000,
				Description: "salary",
			},
			setupMocks: func(txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, domain.ErrUserNotFound)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "invalid kind rejected",
			input: usecase.CreateTransactionInput{
				ID:          "t1",
				UserID:      "u1",
				Kind:        "transfer",
				Amount:      1000,
				Description: "salary",
			},
			setupMocks: func(txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
			},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name: "non-positive amount rejected",
			input: usecase.CreateTransactionInput{
				ID:          "t1",
				UserID:      "u1",
				Kind:        "expense",
				Amount:      -5,
				Description: "groceries",
			},
			setupMocks: func(txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
			},
			wantErr: domain.ErrAmountNotPositive,
		},
		{
			name: "empty description rejected",
			input: usecase.CreateTransactionInput{
				ID:          "t1",
				UserID:      "u1",
				Kind:        "expense",
				Amount:      10,
				Description: "   ",
			},
			setupMocks: func(txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
			},
			wantErr: domain.ErrDescriptionEmpty,
		},
		{
			name: "store error propagated",
			input: usecase.CreateTransactionInput{
				ID:          "t1",
				UserID:      "u1",
				Kind:        "income",
				Amount:      1000,
				Description: "salary",
			},
			setupMocks: func(txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
				txRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("store down"))
			},
			wantErr: errors.New("store down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txRepo := mocks.NewMockTransactionRepository(ctrl)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setupMocks(txRepo, userRepo)

			uc := usecase.NewTransactionUseCase(txRepo, userRepo)
			err := uc.CreateTransaction(context.Background(), tt.input)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) && err.Error() != tt.wantErr.Error() {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTransactionUseCase_DeleteTransaction(t *testing.T) {
	tests := []struct {
		name       string
		input      usecase.DeleteTransactionInput
		setupMocks func(*testing.T, *mocks.MockTransactionRepository, *mocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:  "successful delete",
			input: usecase.DeleteTransactionInput{TransactionID: "t1", UserID: "u1"},
			setupMocks: func(t *testing.T, txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
				txRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(newTestTransaction(t, "t1", "u1", domain.KindExpense, 50), nil)
				txRepo.EXPECT().Delete(gomock.Any(), "t1").Return(nil)
			},
		},
		{
			name:  "user not found",
			input: usecase.DeleteTransactionInput{TransactionID: "t1", UserID: "ghost"},
			setupMocks: func(t *testing.T, txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, domain.ErrUserNotFound)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:  "transaction not found",
			input: usecase.DeleteTransactionInput{TransactionID: "missing", UserID: "u1"},
			setupMocks: func(t *testing.T, txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
				txRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrTransactionNotFound)
			},
			wantErr: domain.ErrTransactionNotFound,
		},
		{
			name:  "transaction owned by someone else",
			input: usecase.DeleteTransactionInput{TransactionID: "t1", UserID: "u2"},
			setupMocks: func(t *testing.T, txRepo *mocks.MockTransactionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetByID(gomock.Any(), "u2").Return(newTestUser(t, "u2", "u2@example.com"), nil)
				txRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(newTestTransaction(t, "t1", "u1", domain.KindExpense, 50), nil)
			},
			wantErr: domain.ErrTransactionNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txRepo := mocks.NewMockTransactionRepository(ctrl)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setupMocks(t, txRepo, userRepo)

			uc := usecase.NewTransactionUseCase(txRepo, userRepo)
			err := uc.DeleteTransaction(context.Background(), tt.input)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTransactionUseCase_ListUserTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := mocks.NewMockTransactionRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
	txRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return([]*domain.Transaction{
		newTestTransaction(t, "t1", "u1", domain.KindIncome, 1000.00),
		newTestTransaction(t, "t2", "u1", domain.KindExpense, 300.50),
	}, nil)

	uc := usecase.NewTransactionUseCase(txRepo, userRepo)

	out, err := uc.ListUserTransactions(context.Background(), usecase.ListUserTransactionsInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(out.Transactions))
	}
	if !out.TotalIncome.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("expected totalIncome 1000, got %s", out.TotalIncome)
	}
	if !out.TotalExpenses.Equal(decimal.RequireFromString("300.5")) {
		t.Fatalf("expected totalExpenses 300.50, got %s", out.TotalExpenses)
	}
	if !out.Balance.Equal(decimal.RequireFromString("699.5")) {
		t.Fatalf("expected balance 699.50, got %s", out.Balance)
	}
}

func TestTransactionUseCase_ListUserTransactions_KindFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := mocks.NewMockTransactionRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
	txRepo.EXPECT().ListByUserAndKind(gomock.Any(), "u1", domain.KindExpense).Return([]*domain.Transaction{
		newTestTransaction(t, "t2", "u1", domain.KindExpense, 300.50),
	}, nil)

	uc := usecase.NewTransactionUseCase(txRepo, userRepo)

	// filter is case-normalized before hitting the store
	out, err := uc.ListUserTransactions(context.Background(), usecase.ListUserTransactionsInput{
		UserID: "u1",
		Kind:   "expense",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(out.Transactions))
	}
	if !out.TotalIncome.IsZero() {
		t.Fatalf("expected zero income, got %s", out.TotalIncome)
	}
	if !out.Balance.Equal(decimal.RequireFromString("-300.5")) {
		t.Fatalf("expected balance -300.50, got %s", out.Balance)
	}
}

func TestTransactionUseCase_ListUserTransactions_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := mocks.NewMockTransactionRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)
	txRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(nil, nil)

	uc := usecase.NewTransactionUseCase(txRepo, userRepo)

	out, err := uc.ListUserTransactions(context.Background(), usecase.ListUserTransactionsInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Transactions) != 0 {
		t.Fatalf("expected no transactions, got %d", len(out.Transactions))
	}
	if !out.TotalIncome.IsZero() || !out.TotalExpenses.IsZero() || !out.Balance.IsZero() {
		t.Fatal("expected zero aggregates for empty result set")
	}
}

func TestTransactionUseCase_ListUserTransactions_InvalidFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := mocks.NewMockTransactionRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(newTestUser(t, "u1", "u1@example.com"), nil)

	uc := usecase.NewTransactionUseCase(txRepo, userRepo)

	_, err := uc.ListUserTransactions(context.Background(), usecase.ListUserTransactionsInput{
		UserID: "u1",
		Kind:   "transfer",
	})
	if !errors.Is(err, domain.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}
