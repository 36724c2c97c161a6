package domain

import "errors"

// Validation errors
var (
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")
	ErrAmountNotANumber   = errors.New("amount must be a valid number")
	ErrDescriptionEmpty   = errors.New("description cannot be empty")
	ErrDescriptionTooLong = errors.New("description cannot exceed 255 characters")
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrTransactionIDEmpty = errors.New("transaction id cannot be empty")
	ErrUserIDEmpty        = errors.New("user id cannot be empty")
	ErrPasswordHashEmpty  = errors.New("password hash cannot be empty")
)

// Not-found errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Authorization errors
var (
	ErrTransactionNotOwned = errors.New("transaction does not belong to the user")
)

// Conflict errors
var (
	ErrEmailTaken = errors.New("user already exists")
)
