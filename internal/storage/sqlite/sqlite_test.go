package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"freundebuch/internal/models"
	"freundebuch/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "freundebuch-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustCreateUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()

	user := models.NewUser(email, "hash", true)
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestFriendStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, store, "owner@example.com")

	t.Run("AddFriend assigns ID and timestamp", func(t *testing.T) {
		friend := &models.Friend{
			OwnerID:       owner.ID,
			Name:          "Lena",
			Birthdate:     "1992-04-01",
			Hobbies:       "Lesen",
			FavoriteColor: "Grün",
			FavoriteFood:  "Pasta",
			Notes:         "Mag keine Technik.",
		}

		if err := store.AddFriend(ctx, friend); err != nil {
			t.Fatalf("AddFriend failed: %v", err)
		}

		if friend.ID == "" {
			t.Error("Expected friend ID to be generated")
		}
		if friend.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("ListFriends returns the persisted record", func(t *testing.T) {
		friends, err := store.ListFriends(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}

		var matches int
		for _, f := range friends {
			if f.Name == "Lena" {
				matches++
				if f.OwnerID != owner.ID {
					t.Errorf("OwnerID mismatch: got %s, want %s", f.OwnerID, owner.ID)
				}
				if f.Hobbies != "Lesen" || f.FavoriteColor != "Grün" || f.FavoriteFood != "Pasta" {
					t.Errorf("Attributes not round-tripped: %+v", f)
				}
			}
		}
		if matches != 1 {
			t.Errorf("Expected exactly one record named Lena, got %d", matches)
		}
	})

	t.Run("ListFriends orders by name with German collation", func(t *testing.T) {
		for _, name := range []string{"Zoe", "Ärna", "ben"} {
			if err := store.AddFriend(ctx, &models.Friend{OwnerID: owner.ID, Name: name}); err != nil {
				t.Fatalf("AddFriend(%s) failed: %v", name, err)
			}
		}

		friends, err := store.ListFriends(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}

		want := []string{"Ärna", "ben", "Lena", "Zoe"}
		if len(friends) != len(want) {
			t.Fatalf("Expected %d friends, got %d", len(want), len(friends))
		}
		for i, name := range want {
			if friends[i].Name != name {
				t.Errorf("Position %d: got %q, want %q", i, friends[i].Name, name)
			}
		}
	})

	t.Run("ListFriends is owner-scoped", func(t *testing.T) {
		other := mustCreateUser(t, store, "other@example.com")

		friends, err := store.ListFriends(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}
		if len(friends) != 0 {
			t.Errorf("Expected empty list for other owner, got %d records", len(friends))
		}
	})

	t.Run("AddFriend rejects empty name", func(t *testing.T) {
		err := store.AddFriend(ctx, &models.Friend{OwnerID: owner.ID, Name: "   "})
		if !errors.Is(err, storage.ErrNameRequired) {
			t.Fatalf("Expected ErrNameRequired, got %v", err)
		}

		friends, err := store.ListFriends(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}
		for _, f := range friends {
			if f.Name == "   " {
				t.Error("Empty-named friend was persisted")
			}
		}
	})
}

func TestUserStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser and GetUserByEmail round-trip", func(t *testing.T) {
		user := models.NewUser("lena@example.com", "hash", false)
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUserByEmail(ctx, "lena@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Fatalf("Unexpected user: %+v", got)
		}
		if got.Verified {
			t.Error("Expected unverified account")
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID == nil || byID.Email != "lena@example.com" {
			t.Fatalf("Unexpected user by ID: %+v", byID)
		}
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("ConfirmUser flips the verified flag", func(t *testing.T) {
		if err := store.ConfirmUser(ctx, "lena@example.com"); err != nil {
			t.Fatalf("ConfirmUser failed: %v", err)
		}

		got, err := store.GetUserByEmail(ctx, "lena@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || !got.Verified {
			t.Errorf("Expected verified account, got %+v", got)
		}
	})

	t.Run("ConfirmUser for unknown email fails", func(t *testing.T) {
		err := store.ConfirmUser(ctx, "nobody@example.com")
		if !errors.Is(err, storage.ErrUserNotFound) {
			t.Fatalf("Expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("Duplicate email is rejected by the schema", func(t *testing.T) {
		if err := store.CreateUser(ctx, models.NewUser("lena@example.com", "hash2", true)); err == nil {
			t.Error("Expected unique constraint error, got nil")
		}
	})
}
