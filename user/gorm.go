package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/kbukum/authkit/errors"
)

// GormRepository implements Repository on a gorm connection.
type GormRepository struct {
	db *gorm.DB
}

var _ Repository = (*GormRepository)(nil)

// NewGormRepository creates a gorm-backed user repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates or updates the users table.
func (r *GormRepository) Migrate() error {
	if err := r.db.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("user: migrate: %w", err)
	}
	return nil
}

func (r *GormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user: find by email: %w", err)
	}
	return &u, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user: find by id: %w", err)
	}
	return &u, nil
}

func (r *GormRepository) Create(ctx context.Context, u *User) (*User, error) {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperrors.Conflict("A user with this email already exists.")
	}
	if err != nil {
		return nil, fmt.Errorf("user: create: %w", err)
	}
	return u, nil
}

func (r *GormRepository) Update(ctx context.Context, id string, changes Changes) (*User, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("user")
	}

	updates := map[string]any{}
	if changes.Email != nil {
		updates["email"] = *changes.Email
	}
	if changes.PasswordHash != nil {
		updates["password_hash"] = *changes.PasswordHash
	}
	if len(updates) > 0 {
		err = r.db.WithContext(ctx).Model(existing).Updates(updates).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("A user with this email already exists.")
		}
		if err != nil {
			return nil, fmt.Errorf("user: update: %w", err)
		}
	}
	return existing, nil
}

func (r *GormRepository) Delete(ctx context.Context, id string) (*User, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("user")
	}
	if err := r.db.WithContext(ctx).Delete(existing).Error; err != nil {
		return nil, fmt.Errorf("user: delete: %w", err)
	}
	return existing, nil
}
