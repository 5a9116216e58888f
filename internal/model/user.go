package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	// Create stores the user and returns it with the store-assigned ID.
	// It returns ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a stored user with its password hash.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	ID       uuid.UUID
	Username string
	Token    string
}
