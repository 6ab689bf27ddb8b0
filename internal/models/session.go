package models

// Session is the proof of authentication for the currently signed-in user.
// A nil *Session is the normal signed-out state. The session gateway is the
// only writer; everything else observes.
type Session struct {
	// UserID identifies the authenticated account.
	UserID string

	// Email is the account's email address.
	Email string

	// Token is the signed JWT backing this session.
	Token string
}
