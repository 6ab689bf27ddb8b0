package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"freundebuch/internal/models"
	"freundebuch/internal/storage"
)

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, verified, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Verified,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *SQLiteStore) getUser(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, verified, created_at
		FROM users
		WHERE %s = ?
	`, column)

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Verified,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return user, nil
}

// ConfirmUser marks the account with the given email as verified.
func (s *SQLiteStore) ConfirmUser(ctx context.Context, email string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE users SET verified = 1 WHERE email = ?", email)
	if err != nil {
		return fmt.Errorf("failed to confirm user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to confirm user: %w", err)
	}
	if affected == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
