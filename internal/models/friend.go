package models

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Friend represents one person tracked in a user's friend book.
// Records are created once and never edited or deleted in this workflow.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format).
	ID string

	// OwnerID references the user account this record belongs to.
	// Every query against the store is scoped by this ID.
	OwnerID string

	// Name is the friend's display name. Required, non-empty.
	Name string

	// Birthdate is an optional ISO date (YYYY-MM-DD). Empty when unknown.
	Birthdate string

	// Hobbies is free text.
	Hobbies string

	// FavoriteColor is free text.
	FavoriteColor string

	// FavoriteFood is free text.
	FavoriteFood string

	// Notes is free text.
	Notes string

	// CreatedAt is the Unix timestamp assigned by the store on insert.
	CreatedAt int64
}

// SortFriends orders friends ascending by name using German, case-insensitive
// collation. The repository and the in-memory merge path both use this, so a
// merged list matches a fresh fetch exactly.
func SortFriends(friends []Friend) {
	c := collate.New(language.German, collate.IgnoreCase)
	sort.SliceStable(friends, func(i, j int) bool {
		return c.CompareString(friends[i].Name, friends[j].Name) < 0
	})
}

// MergeFriend inserts a newly persisted friend into an already sorted list,
// avoiding a round trip to the store after an insert.
func MergeFriend(friends []Friend, f Friend) []Friend {
	merged := make([]Friend, 0, len(friends)+1)
	merged = append(merged, friends...)
	merged = append(merged, f)
	SortFriends(merged)
	return merged
}
