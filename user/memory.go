package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/kbukum/authkit/errors"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*User
	index map[string]string // email -> id

	// CreateErr, when set, is returned by Create. Used to exercise the
	// unexpected-persistence-failure path in tests.
	CreateErr error
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:  make(map[string]*User),
		index: make(map[string]string),
	}
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.index[email]
	if !ok {
		return nil, nil
	}
	return copyUser(r.byID[id]), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *MemoryRepository) Create(_ context.Context, u *User) (*User, error) {
	if r.CreateErr != nil {
		return nil, r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[u.Email]; exists {
		return nil, apperrors.Conflict("A user with this email already exists.")
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byID[u.ID.String()] = copyUser(u)
	r.index[u.Email] = u.ID.String()
	return copyUser(u), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, changes Changes) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	if changes.Email != nil {
		if otherID, exists := r.index[*changes.Email]; exists && otherID != id {
			return nil, apperrors.Conflict("A user with this email already exists.")
		}
		delete(r.index, u.Email)
		u.Email = *changes.Email
		r.index[u.Email] = id
	}
	if changes.PasswordHash != nil {
		u.PasswordHash = *changes.PasswordHash
	}
	u.UpdatedAt = time.Now()
	return copyUser(u), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	delete(r.byID, id)
	delete(r.index, u.Email)
	return u, nil
}

func copyUser(u *User) *User {
	c := *u
	return &c
}
