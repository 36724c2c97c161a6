package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserResponse represents a user in API responses. The password hash never
// leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Name:      u.Name().String(),
		Email:     u.Email().String(),
		CreatedAt: u.CreatedAt(),
	}
}

// CreateTransactionResponse carries the server-assigned transaction id.
type CreateTransactionResponse struct {
	ID string `json:"id"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Kind            string          `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formatted_amount"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID(),
		UserID:          t.UserID(),
		Kind:            t.Kind().String(),
		Amount:          t.Amount().Decimal(),
		FormattedAmount: t.FormattedAmount(),
		Description:     t.Description().String(),
		CreatedAt:       t.CreatedAt(),
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse carries a user's transactions plus aggregates.
type ListTransactionsResponse struct {
	Transactions  []*TransactionResponse `json:"transactions"`
	TotalIncome   decimal.Decimal        `json:"total_income"`
	TotalExpenses decimal.Decimal        `json:"total_expenses"`
	Balance       decimal.Decimal        `json:"balance"`
}

// ListTransactionsFromOutput converts use case output to a response.
func ListTransactionsFromOutput(out *usecase.ListUserTransactionsOutput) *ListTransactionsResponse {
	return &ListTransactionsResponse{
		Transactions:  TransactionsFromDomain(out.Transactions),
		TotalIncome:   out.TotalIncome,
		TotalExpenses: out.TotalExpenses,
		Balance:       out.Balance,
	}
}
