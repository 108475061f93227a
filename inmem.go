package scribble

import (
	"context"
	"sync"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[ID]*User
}

// NewUserRepository returns an in-memory Repository, used in tests and
// when no Mongo URI is configured.
func NewUserRepository() Repository {
	return &userRepository{users: map[ID]*User{}}
}

func (repo *userRepository) FindByName(_ context.Context, username string) (*User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, u := range repo.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (repo *userRepository) Store(_ context.Context, u *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, v := range repo.users {
		if v.Username == u.Username && v.ID != u.ID {
			return ErrExistingUsername
		}
	}
	c := *u
	repo.users[u.ID] = &c
	return nil
}
