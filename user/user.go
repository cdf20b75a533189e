package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the persisted identity record. Email is unique and stored
// lowercase; uniqueness is enforced at persistence.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate generates a UUID if not already set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Sanitized is the user record as it leaves the server boundary: identity
// fields only, no password hash.
type Sanitized struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitize strips the password hash.
func (u *User) Sanitize() *Sanitized {
	return &Sanitized{
		ID:        u.ID.String(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Changes is a partial update. Nil fields are left untouched.
type Changes struct {
	Email        *string
	PasswordHash *string
}

// Repository is the persistence contract for user records.
//
// Find methods return (nil, nil) when no record exists; absence is a normal
// outcome, not an error. Create returns a CONFLICT error on duplicate email;
// Update and Delete return NOT_FOUND when the id is unknown.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, id string, changes Changes) (*User, error)
	Delete(ctx context.Context, id string) (*User, error)
}
