package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
)

type userRepo struct {
	mu         sync.RWMutex
	byID       map[string]users.User
	byUsername map[string]string // username -> id
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:       make(map[string]users.User),
		byUsername: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return apperr.Duplicate(u.Username + " is duplicated")
	}
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUsername[username]
	return ok, nil
}
