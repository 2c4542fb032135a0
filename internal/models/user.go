package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`              // Primary key
	Email        string    `json:"email" db:"email"`             // Unique email address
	PasswordHash string    `json:"-" db:"password_hash"`         // Bcrypt hash, never serialized
	Name         string    `json:"name" db:"name"`               // Display name
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// UserPublic is the caller-facing projection of a user.
// It deliberately has no password hash field.
type UserPublic struct {
	UserID    uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the caller-facing projection of the user.
func (u *UserDB) Public() UserPublic {
	return UserPublic{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
