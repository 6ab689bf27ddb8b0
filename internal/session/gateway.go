// Package session owns the process-wide authentication session.
//
// The Gateway is the single writer of session state: screens and the view
// controller only observe it through Current and Subscribe. The app subscribes
// exactly once at startup and cancels at shutdown.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"freundebuch/internal/auth"
	"freundebuch/internal/models"
)

// Listener is invoked with the new session (nil when cleared) whenever the
// session state changes.
type Listener func(*models.Session)

// Gateway establishes, restores and clears the current session.
type Gateway struct {
	authenticator auth.Authenticator
	tokens        *auth.JWTManager
	tokenPath     string
	logger        *slog.Logger

	mu      sync.Mutex
	current *models.Session
	subs    map[int]Listener
	nextSub int
}

// NewGateway creates a gateway. tokenPath is where the session token is
// persisted across restarts.
func NewGateway(authenticator auth.Authenticator, tokens *auth.JWTManager, tokenPath string, logger *slog.Logger) *Gateway {
	return &Gateway{
		authenticator: authenticator,
		tokens:        tokens,
		tokenPath:     tokenPath,
		logger:        logger,
		subs:          make(map[int]Listener),
	}
}

// Current returns the active session, or nil when signed out. A nil session
// is the normal signed-out state, not an error.
func (g *Gateway) Current() *models.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Restore loads a previously persisted session token, if any. A missing,
// unreadable or expired token simply yields the signed-out state.
func (g *Gateway) Restore() {
	data, err := os.ReadFile(g.tokenPath)
	if err != nil {
		return
	}

	token := strings.TrimSpace(string(data))
	claims, err := g.tokens.Validate(token)
	if err != nil {
		g.logger.Info("Stored session token no longer valid", "error", err)
		return
	}

	g.set(&models.Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Token:  token,
	})
	g.logger.Info("Session restored", "user_id", claims.UserID, "email", claims.Email)
}

// Subscribe registers fn to be called whenever the session is established or
// cleared. The returned cancel func stops the notifications and must be
// called on teardown.
func (g *Gateway) Subscribe(fn Listener) (cancel func()) {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// SignIn authenticates the credentials and establishes a session. The auth
// error is returned as-is so screens can surface its message verbatim.
func (g *Gateway) SignIn(ctx context.Context, email, password string) error {
	user, err := g.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	token, err := g.tokens.Generate(user)
	if err != nil {
		return fmt.Errorf("failed to create session token: %w", err)
	}

	// Persisting the token is best effort; the in-memory session works
	// either way.
	if err := g.persistToken(token); err != nil {
		g.logger.Warn("Failed to persist session token", "error", err)
	}

	g.set(&models.Session{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	})
	g.logger.Info("Signed in", "user_id", user.ID, "email", user.Email)
	return nil
}

// SignUp creates a new account. It never establishes a session: while
// confirmation is required the account must be confirmed before the first
// sign-in succeeds.
func (g *Gateway) SignUp(ctx context.Context, email, password string) error {
	user, err := g.authenticator.Register(ctx, email, password)
	if err != nil {
		return err
	}

	g.logger.Info("Account registered", "user_id", user.ID, "email", user.Email, "verified", user.Verified)
	return nil
}

// SignOut clears the local session. Removing the persisted token is best
// effort; the gateway reports signed-out regardless of the outcome.
func (g *Gateway) SignOut() {
	if err := os.Remove(g.tokenPath); err != nil && !os.IsNotExist(err) {
		g.logger.Warn("Failed to remove session token", "error", err)
	}
	g.set(nil)
	g.logger.Info("Signed out")
}

// set replaces the current session and notifies listeners outside the lock.
func (g *Gateway) set(s *models.Session) {
	g.mu.Lock()
	g.current = s
	listeners := make([]Listener, 0, len(g.subs))
	for _, fn := range g.subs {
		listeners = append(listeners, fn)
	}
	g.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}

func (g *Gateway) persistToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(g.tokenPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(g.tokenPath, []byte(token), 0600)
}
