// Package view holds the navigation state machine for the single UI context.
package view

import (
	"sync"

	"freundebuch/internal/models"
)

// Screen identifies which top-level screen is shown.
type Screen int

const (
	// SignedOut shows the sign-in/up form.
	SignedOut Screen = iota
	// Dashboard shows the friend list and the add form.
	Dashboard
	// Profile shows the selected friend and gift suggestions.
	Profile
)

func (s Screen) String() string {
	switch s {
	case SignedOut:
		return "signed_out"
	case Dashboard:
		return "dashboard"
	case Profile:
		return "profile"
	default:
		return "unknown"
	}
}

// Controller owns the current screen and the selected friend. It never
// mutates session state itself; it only reacts to gateway notifications.
// The machine has no terminal state: it re-enters SignedOut on sign-out and
// runs for the process lifetime.
type Controller struct {
	mu       sync.Mutex
	screen   Screen
	selected *models.Friend
}

// NewController creates a controller starting on the signed-out screen.
func NewController() *Controller {
	return &Controller{screen: SignedOut}
}

// State returns the current screen and, on Profile, the selected friend.
func (c *Controller) State() (Screen, *models.Friend) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen, c.selected
}

// OnSessionChange forces navigation when the session is established or
// cleared. The selected friend is dropped in both directions, even when the
// profile screen is showing.
func (c *Controller) OnSessionChange(s *models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	if s != nil {
		c.screen = Dashboard
	} else {
		c.screen = SignedOut
	}
}

// SelectFriend moves from the dashboard to the friend's profile. Ignored on
// any other screen.
func (c *Controller) SelectFriend(f models.Friend) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != Dashboard {
		return
	}
	c.selected = &f
	c.screen = Profile
}

// Back returns from the profile to the dashboard and clears the selection.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != Profile {
		return
	}
	c.selected = nil
	c.screen = Dashboard
}
