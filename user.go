package scribble

import (
	"context"
	"errors"
	"time"

	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
)

// Repository gives access to durable user records. Implementations
// must treat usernames as unique.
type Repository interface {
	FindByName(ctx context.Context, username string) (*User, error)
	Store(ctx context.Context, u *User) error
}

type ID string

type User struct {
	ID            ID `bson:"_id"`
	Username      string
	PasswordHash  string
	Administrator bool
	CreatedAt     time.Time
}

var (
	ErrNotFound         = errors.New("user not found")
	ErrExistingUsername = errors.New("username in use")
)

func nextID() ID {
	return ID(xid.New().String())
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

func checkPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
