// Package models defines the core domain models for Freundebuch.
//
// # Models
//
//   - User: a registered account; owns a set of Friend records
//   - Friend: one person tracked in the owner's friend book
//   - GiftSuggestion: a generated gift idea, never persisted
//   - Session: the current proof of authentication
//
// # Design Principles
//
// 1. **Owner scoping**: every Friend belongs to exactly one User; all reads
// and writes are scoped by OwnerID
// 2. **No cross-references by pointer**: relationships use ID strings
// 3. **Stable ordering**: friend lists are always ordered by SortFriends so
// the store and the in-memory merge path agree
package models
