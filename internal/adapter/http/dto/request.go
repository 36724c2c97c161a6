package dto

import (
	"github.com/iho/finledger/internal/usecase"
)

// RegisterUserRequest represents a request to register a user.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterUserRequest) ToUseCaseInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// CreateTransactionRequest represents a request to record a transaction.
type CreateTransactionRequest struct {
	UserID      string  `json:"user_id"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// ToUseCaseInput converts to use case input. The id is assigned server-side.
func (r *CreateTransactionRequest) ToUseCaseInput(id string) usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		ID:          id,
		UserID:      r.UserID,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
