package usecase

import (
	"context"
	"time"

	"github.com/iho/finledger/internal/domain"
)

// UserUseCase handles user registration.
type UserUseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
	idGen    IDGenerator
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, hasher PasswordHasher, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		idGen:    idGen,
	}
}

// RegisterUserInput represents input for registering a user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUser creates a new user with a hashed password. The email must not
// already be registered. The raw password is validated against the policy
// before it reaches the hasher and is never persisted.
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	name, err := domain.NewPersonName(input.Name)
	if err != nil {
		return nil, err
	}

	email, err := domain.NewEmailAddress(input.Email)
	if err != nil {
		return nil, err
	}

	password, err := domain.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	hashed, err := uc.hasher.Hash(password.Raw())
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(uc.idGen.Generate(), name, email, hashed, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
