package scribble

import (
	"context"
	"errors"
	"time"
)

// AccountStore exposes the user repository to the account gateway. It
// satisfies account.Accounts.
type AccountStore struct {
	users Repository
}

func NewAccountStore(users Repository) *AccountStore {
	return &AccountStore{users: users}
}

// CreateAccount hashes the password and stores a new user. The name
// must not be in use; the repository's uniqueness guarantee backs the
// pre-check for repositories that enforce it natively.
func (s *AccountStore) CreateAccount(ctx context.Context, username, password string) error {
	if u, err := s.users.FindByName(ctx, username); u != nil && err == nil {
		return ErrExistingUsername
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	return s.users.Store(ctx, &User{
		ID:           nextID(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
}

// Authenticate returns the canonical username when the credentials
// match an account, and "" when they do not. An error means the store
// itself failed, not that the credentials were wrong.
func (s *AccountStore) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByName(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if !checkPasswordHash(u.PasswordHash, password) {
		return "", nil
	}
	return u.Username, nil
}

func (s *AccountStore) IsAdministrator(ctx context.Context, username string) (bool, error) {
	u, err := s.users.FindByName(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Administrator, nil
}
