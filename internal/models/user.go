package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for sign-in.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Verified reports whether the account's email has been confirmed.
	// Unverified accounts cannot sign in while confirmation is required.
	Verified bool

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation timestamp.
func NewUser(email, passwordHash string, verified bool) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Verified:     verified,
		CreatedAt:    time.Now().Unix(),
	}
}
