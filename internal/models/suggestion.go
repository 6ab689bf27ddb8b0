package models

// GiftSuggestion is a single generated gift idea. Suggestions are ephemeral:
// they live in the profile screen's state until the next generation request
// or navigation away, and are never persisted.
type GiftSuggestion struct {
	// Name of the gift idea.
	Name string `json:"name"`

	// Reason explains why the gift fits the friend.
	Reason string `json:"reason"`

	// EstimatedPrice is a free-form range such as "$20-30".
	EstimatedPrice string `json:"estimated_price"`
}
