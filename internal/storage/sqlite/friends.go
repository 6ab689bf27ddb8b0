package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"freundebuch/internal/models"
	"freundebuch/internal/storage"
)

// ListFriends retrieves all friends owned by ownerID, ordered ascending by
// name. SQLite's built-in collations are not locale-aware, so rows are
// fetched owner-scoped and sorted in Go with the shared German collator.
func (s *SQLiteStore) ListFriends(ctx context.Context, ownerID string) ([]models.Friend, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, name, birthdate, hobbies, favorite_color, favorite_food, notes, created_at
		FROM friends
		WHERE owner_id = ?
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	friends := []models.Friend{}
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(
			&f.ID,
			&f.OwnerID,
			&f.Name,
			&f.Birthdate,
			&f.Hobbies,
			&f.FavoriteColor,
			&f.FavoriteFood,
			&f.Notes,
			&f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	models.SortFriends(friends)
	return friends, nil
}

// AddFriend persists a new friend to the database. ID and CreatedAt are
// assigned here and written back to the passed record.
func (s *SQLiteStore) AddFriend(ctx context.Context, friend *models.Friend) error {
	if strings.TrimSpace(friend.Name) == "" {
		return storage.ErrNameRequired
	}

	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt == 0 {
		friend.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO friends (id, owner_id, name, birthdate, hobbies, favorite_color, favorite_food, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		friend.ID,
		friend.OwnerID,
		friend.Name,
		friend.Birthdate,
		friend.Hobbies,
		friend.FavoriteColor,
		friend.FavoriteFood,
		friend.Notes,
		friend.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}

	return nil
}
