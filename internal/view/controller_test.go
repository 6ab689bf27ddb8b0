package view

import (
	"testing"

	"freundebuch/internal/models"
)

func TestControllerStartsSignedOut(t *testing.T) {
	c := NewController()

	screen, selected := c.State()
	if screen != SignedOut {
		t.Errorf("Expected SignedOut, got %v", screen)
	}
	if selected != nil {
		t.Errorf("Expected no selected friend, got %v", selected)
	}
}

func TestSessionEstablishedForcesDashboard(t *testing.T) {
	c := NewController()

	c.OnSessionChange(&models.Session{UserID: "u1"})

	screen, _ := c.State()
	if screen != Dashboard {
		t.Errorf("Expected Dashboard, got %v", screen)
	}
}

func TestSessionClearedForcesSignedOutAndDropsSelection(t *testing.T) {
	c := NewController()
	c.OnSessionChange(&models.Session{UserID: "u1"})
	c.SelectFriend(models.Friend{ID: "f1", Name: "Anna"})

	c.OnSessionChange(nil)

	screen, selected := c.State()
	if screen != SignedOut {
		t.Errorf("Expected SignedOut, got %v", screen)
	}
	if selected != nil {
		t.Errorf("Expected selection cleared, got %v", selected)
	}
}

func TestSessionEstablishedFromProfileResetsSelection(t *testing.T) {
	c := NewController()
	c.OnSessionChange(&models.Session{UserID: "u1"})
	c.SelectFriend(models.Friend{ID: "f1", Name: "Anna"})

	// A refreshed session always lands on the dashboard, even from Profile.
	c.OnSessionChange(&models.Session{UserID: "u1"})

	screen, selected := c.State()
	if screen != Dashboard {
		t.Errorf("Expected Dashboard, got %v", screen)
	}
	if selected != nil {
		t.Errorf("Expected selection cleared, got %v", selected)
	}
}

func TestSelectAndBack(t *testing.T) {
	c := NewController()
	c.OnSessionChange(&models.Session{UserID: "u1"})

	c.SelectFriend(models.Friend{ID: "f1", Name: "Anna"})
	screen, selected := c.State()
	if screen != Profile {
		t.Fatalf("Expected Profile, got %v", screen)
	}
	if selected == nil || selected.ID != "f1" {
		t.Fatalf("Expected friend f1 selected, got %v", selected)
	}

	c.Back()
	screen, selected = c.State()
	if screen != Dashboard {
		t.Errorf("Expected Dashboard after back, got %v", screen)
	}
	if selected != nil {
		t.Errorf("Expected selection cleared after back, got %v", selected)
	}
}

func TestSelectFriendIgnoredWhenSignedOut(t *testing.T) {
	c := NewController()

	c.SelectFriend(models.Friend{ID: "f1", Name: "Anna"})

	screen, selected := c.State()
	if screen != SignedOut || selected != nil {
		t.Errorf("Expected selection to be ignored, got %v %v", screen, selected)
	}
}

func TestBackIgnoredOutsideProfile(t *testing.T) {
	c := NewController()
	c.OnSessionChange(&models.Session{UserID: "u1"})

	c.Back()

	screen, _ := c.State()
	if screen != Dashboard {
		t.Errorf("Expected Dashboard, got %v", screen)
	}
}
