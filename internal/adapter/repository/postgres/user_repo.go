package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finledger/internal/domain"
)

// UserRepository implements user persistence on PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save inserts a new user.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID(),
		user.Name().String(),
		user.Email().String(),
		user.PasswordHash(),
		user.CreatedAt(),
	)

	return err
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}

	return user, err
}

// GetByEmail retrieves a user by email. Absence is not an error here.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	return user, err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id           string
		name         string
		email        string
		passwordHash string
		createdAt    time.Time
	)

	if err := row.Scan(&id, &name, &email, &passwordHash, &createdAt); err != nil {
		return nil, err
	}

	personName, err := domain.NewPersonName(name)
	if err != nil {
		return nil, err
	}

	address, err := domain.NewEmailAddress(email)
	if err != nil {
		return nil, err
	}

	return domain.NewUser(id, personName, address, passwordHash, createdAt)
}
