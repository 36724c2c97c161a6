package domain

import "time"

// User is a registered individual. The password hash is produced by an
// external one-way hasher; the entity never sees the raw secret.
type User struct {
	id           string
	name         PersonName
	email        EmailAddress
	passwordHash string
	createdAt    time.Time
}

// NewUser builds a user from validated value objects and a non-empty password
// hash. Email uniqueness is enforced by the registration use case, not here.
func NewUser(id string, name PersonName, email EmailAddress, passwordHash string, createdAt time.Time) (*User, error) {
	if id == "" {
		return nil, ErrUserIDEmpty
	}

	if passwordHash == "" {
		return nil, ErrPasswordHashEmpty
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

// ID returns the generated identity.
func (u *User) ID() string {
	return u.id
}

// Name returns the display name.
func (u *User) Name() PersonName {
	return u.name
}

// Email returns the email address, the secondary uniqueness key.
func (u *User) Email() EmailAddress {
	return u.email
}

// PasswordHash returns the stored one-way hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
