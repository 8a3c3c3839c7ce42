package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"game-marketplace/internal/fixture"
	"game-marketplace/internal/model"
)

type UserRepository interface {
	Seed(ctx context.Context) error
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
	UpdateRole(ctx context.Context, userID string, role model.Role) (*model.User, error)
	Delete(ctx context.Context, userID string) (*model.User, error)
}

type userRepoImpl struct {
	mu     sync.RWMutex
	users  []model.User
	seeded bool
}

func NewUserRepository() UserRepository {
	return &userRepoImpl{}
}

func (r *userRepoImpl) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seeded {
		return nil
	}

	r.users = append(r.users, fixture.Users()...)
	r.seeded = true

	return nil
}

func (r *userRepoImpl) FindAll(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.CloneUsers(r.users), nil
}

func (r *userRepoImpl) FindByID(ctx context.Context, userID string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(userID)
	if i < 0 {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}

	user := r.users[i].Clone()
	return &user, nil
}

func (r *userRepoImpl) UpdateRole(ctx context.Context, userID string, role model.Role) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID)
	if i < 0 {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}

	r.users[i].Role = role

	user := r.users[i].Clone()
	return &user, nil
}

// Delete removes a non-admin user. Admins are refused with ErrPermissionDenied
// and the collection is left as it was.
func (r *userRepoImpl) Delete(ctx context.Context, userID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID)
	if i < 0 {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	if r.users[i].IsAdmin() {
		return nil, fmt.Errorf("delete admin user %s: %w", userID, model.ErrPermissionDenied)
	}

	removed := r.users[i]
	r.users = slices.Delete(r.users, i, i+1)

	return &removed, nil
}

func (r *userRepoImpl) indexOf(userID string) int {
	return slices.IndexFunc(r.users, func(u model.User) bool {
		return u.ID == userID
	})
}
