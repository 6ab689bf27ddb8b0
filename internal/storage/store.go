// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"freundebuch/internal/models"
)

var (
	// ErrNameRequired is returned by AddFriend when the friend's name is empty.
	ErrNameRequired = errors.New("friend name must not be empty")

	// ErrUserNotFound is returned by ConfirmUser for an unknown email.
	ErrUserNotFound = errors.New("user not found")
)

// Store defines the persistence operations for user accounts and friend
// records. This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the session or web layers.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no
	// such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when no such
	// user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ConfirmUser marks the account with the given email as verified.
	ConfirmUser(ctx context.Context, email string) error

	// ListFriends returns all friends owned by ownerID, ordered ascending by
	// name (German locale, case-insensitive). Returns an empty slice when
	// the owner has no friends.
	ListFriends(ctx context.Context, ownerID string) ([]models.Friend, error)

	// AddFriend persists a new friend scoped to friend.OwnerID. The store
	// assigns ID and CreatedAt and writes them back to the passed record.
	// The friend's name must be non-empty.
	AddFriend(ctx context.Context, friend *models.Friend) error

	// Close releases any resources held by the store.
	Close() error
}
