// Package cellstore implements the user repository on top of a single
// persistent key-value slot holding the whole collection as one JSON
// snapshot.
package cellstore

import (
	"context"
	"sync"

	"go-user-directory/internal/domain"
	"go-user-directory/internal/storage"
	"go-user-directory/pkg/logger"
)

type userRepository struct {
	cell *storage.Cell
	key  string

	mu    sync.RWMutex
	users []domain.User // canonical ordered collection
}

// NewUserRepository loads the collection from the cell, seeding the fixed
// initial users when the slot is empty. Every mutation afterwards replaces
// the snapshot and writes it through the cell.
func NewUserRepository(ctx context.Context, cell *storage.Cell, key string) domain.UserRepository {
	repo := &userRepository{cell: cell, key: key}
	if seeded := cell.LoadOrSeed(ctx, key, &repo.users, domain.SeedUsers()); seeded {
		logger.Log.Info("no stored directory found, seeded initial users", "key", key, "count", len(repo.users))
	}
	return repo
}

func (r *userRepository) List(_ context.Context) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	for i, u := range r.users {
		out[i] = u.Clone()
	}
	return out
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			c := u.Clone()
			return &c, true
		}
	}
	return nil, false
}

func (r *userRepository) Append(ctx context.Context, user domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.User, 0, len(r.users)+1)
	next = append(next, r.users...)
	next = append(next, user.Clone())
	r.swap(ctx, next)
}

func (r *userRepository) Remove(ctx context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.User, 0, len(r.users))
	found := false
	for _, u := range r.users {
		if u.ID == id {
			found = true
			continue
		}
		next = append(next, u)
	}
	if !found {
		return false
	}
	r.swap(ctx, next)
	return true
}

func (r *userRepository) Replace(ctx context.Context, user domain.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.User, len(r.users))
	found := false
	for i, u := range r.users {
		if u.ID == user.ID {
			next[i] = user.Clone()
			found = true
			continue
		}
		next[i] = u
	}
	if !found {
		return false
	}
	r.swap(ctx, next)
	return true
}

// swap installs a fresh snapshot and writes it through. Readers never see a
// half-updated collection because the slice is replaced wholesale. Callers
// must hold r.mu.
func (r *userRepository) swap(ctx context.Context, next []domain.User) {
	r.users = next
	r.cell.Store(ctx, r.key, r.users)
}
