package auth

import (
	"context"

	"freundebuch/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the session gateway.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, email, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if valid.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's
	// requirements (length, complexity, format, ...).
	ValidateCredential(credential string) error
}
