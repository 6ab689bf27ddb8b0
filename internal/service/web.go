// Package service renders the three screens (sign-in, dashboard, profile)
// and handles their form posts.
//
// The app serves exactly one active browser context, so screen state (friend
// list cache, inline errors, busy latches) lives on the service itself
// rather than per request. Busy latches are advisory: they stop a second
// submission while one is outstanding, nothing more.
package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"freundebuch/internal/gifts"
	"freundebuch/internal/models"
	"freundebuch/internal/session"
	"freundebuch/internal/storage"
	"freundebuch/internal/view"
)

// SuggestionGenerator produces gift ideas for a friend.
type SuggestionGenerator interface {
	GiftSuggestions(ctx context.Context, friend models.Friend) ([]models.GiftSuggestion, error)
}

// Web serves the screens of the friend book.
type Web struct {
	sessions *session.Gateway
	store    storage.Store
	gifts    SuggestionGenerator // nil when no API key was configured
	nav      *view.Controller
	logger   *slog.Logger

	adding     latch
	generating latch

	mu   sync.Mutex
	auth authScreen
	dash dashboardScreen
	prof profileScreen
}

type authScreen struct {
	errMsg  string
	infoMsg string
}

type friendForm struct {
	Name          string
	Birthdate     string
	Hobbies       string
	FavoriteColor string
	FavoriteFood  string
	Notes         string
}

type dashboardScreen struct {
	friends []models.Friend
	loaded  bool
	form    friendForm
	errMsg  string
}

type profileScreen struct {
	suggestions []models.GiftSuggestion
	errMsg      string
}

// NewWeb creates the web service. generator may be nil; the profile screen
// then surfaces the generation error on first use.
func NewWeb(sessions *session.Gateway, store storage.Store, generator SuggestionGenerator, nav *view.Controller, logger *slog.Logger) *Web {
	return &Web{
		sessions: sessions,
		store:    store,
		gifts:    generator,
		nav:      nav,
		logger:   logger,
	}
}

// OnSessionChange is the single process-wide session listener. It forwards
// to the navigation controller and resets per-screen state so a new session
// never sees the previous one's data.
func (w *Web) OnSessionChange(s *models.Session) {
	w.nav.OnSessionChange(s)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.auth = authScreen{}
	w.dash = dashboardScreen{}
	w.prof = profileScreen{}
}

// Routes returns the screen routes.
func (w *Web) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", w.handleIndex)
	r.Post("/signin", w.handleSignIn)
	r.Post("/signup", w.handleSignUp)
	r.Post("/signout", w.handleSignOut)
	r.Post("/friends", w.handleAddFriend)
	r.Get("/friends/{id}", w.handleSelectFriend)
	r.Post("/back", w.handleBack)
	r.Post("/suggestions", w.handleGenerate)
	return r
}

// handleIndex renders whatever screen the navigation controller says.
func (w *Web) handleIndex(rw http.ResponseWriter, r *http.Request) {
	screen, selected := w.nav.State()

	switch screen {
	case view.Dashboard:
		w.renderDashboard(rw, r)
	case view.Profile:
		if selected == nil {
			// Selection lost (e.g. session flip mid-navigation); fall back.
			w.nav.Back()
			w.renderDashboard(rw, r)
			return
		}
		w.renderProfile(rw, *selected)
	default:
		w.renderAuth(rw)
	}
}

func (w *Web) renderAuth(rw http.ResponseWriter) {
	w.mu.Lock()
	data := authData{Error: w.auth.errMsg, Message: w.auth.infoMsg}
	w.mu.Unlock()
	render(rw, authTmpl, data)
}

func (w *Web) renderDashboard(rw http.ResponseWriter, r *http.Request) {
	sess := w.sessions.Current()
	if sess == nil {
		w.renderAuth(rw)
		return
	}

	w.mu.Lock()
	if !w.dash.loaded {
		// A list failure keeps whatever was displayed before (or the empty
		// list) and shows the error inline.
		friends, err := w.store.ListFriends(r.Context(), sess.UserID)
		if err != nil {
			w.logger.Error("Failed to list friends", "user_id", sess.UserID, "error", err)
			w.dash.errMsg = "Fehler beim Laden der Freunde."
		} else {
			w.dash.friends = friends
			w.dash.loaded = true
			w.dash.errMsg = ""
		}
	}
	data := dashboardData{
		Email:   sess.Email,
		Friends: w.dash.friends,
		Form:    w.dash.form,
		Error:   w.dash.errMsg,
	}
	w.mu.Unlock()

	render(rw, dashboardTmpl, data)
}

func (w *Web) renderProfile(rw http.ResponseWriter, friend models.Friend) {
	w.mu.Lock()
	data := profileData{
		Friend:      friend,
		Suggestions: w.prof.suggestions,
		Error:       w.prof.errMsg,
	}
	w.mu.Unlock()
	render(rw, profileTmpl, data)
}

func (w *Web) handleSignIn(rw http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	w.mu.Lock()
	w.auth = authScreen{}
	w.mu.Unlock()

	if email == "" || password == "" {
		w.setAuthError("E-Mail und Passwort sind erforderlich.")
		redirectHome(rw, r)
		return
	}

	if err := w.sessions.SignIn(r.Context(), email, password); err != nil {
		// Surfaced verbatim, as the provider reports it.
		w.setAuthError(err.Error())
	}
	redirectHome(rw, r)
}

func (w *Web) handleSignUp(rw http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	w.mu.Lock()
	w.auth = authScreen{}
	w.mu.Unlock()

	if email == "" || password == "" {
		w.setAuthError("E-Mail und Passwort sind erforderlich.")
		redirectHome(rw, r)
		return
	}

	if err := w.sessions.SignUp(r.Context(), email, password); err != nil {
		w.setAuthError(err.Error())
	} else {
		w.mu.Lock()
		w.auth.infoMsg = "Prüfe deine E-Mails für den Bestätigungslink!"
		w.mu.Unlock()
	}
	redirectHome(rw, r)
}

func (w *Web) handleSignOut(rw http.ResponseWriter, r *http.Request) {
	w.sessions.SignOut()
	redirectHome(rw, r)
}

func (w *Web) handleAddFriend(rw http.ResponseWriter, r *http.Request) {
	sess := w.sessions.Current()
	if sess == nil {
		redirectHome(rw, r)
		return
	}

	form := friendForm{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Birthdate:     strings.TrimSpace(r.FormValue("birthdate")),
		Hobbies:       r.FormValue("hobbies"),
		FavoriteColor: r.FormValue("favorite_color"),
		FavoriteFood:  r.FormValue("favorite_food"),
		Notes:         r.FormValue("notes"),
	}

	// Required-field check before any store call.
	if form.Name == "" {
		w.mu.Lock()
		w.dash.form = form
		w.dash.errMsg = "Name ist erforderlich."
		w.mu.Unlock()
		redirectHome(rw, r)
		return
	}

	// One add at a time; a second submission is dropped.
	if !w.adding.tryAcquire() {
		redirectHome(rw, r)
		return
	}
	defer w.adding.release()

	friend := &models.Friend{
		OwnerID:       sess.UserID,
		Name:          form.Name,
		Birthdate:     form.Birthdate,
		Hobbies:       form.Hobbies,
		FavoriteColor: form.FavoriteColor,
		FavoriteFood:  form.FavoriteFood,
		Notes:         form.Notes,
	}

	if err := w.store.AddFriend(r.Context(), friend); err != nil {
		// The form stays populated for retry.
		w.logger.Error("Failed to add friend", "user_id", sess.UserID, "error", err)
		w.mu.Lock()
		w.dash.form = form
		w.dash.errMsg = "Fehler beim Hinzufügen des Freundes."
		w.mu.Unlock()
		redirectHome(rw, r)
		return
	}

	// Merge the persisted record into the cached list instead of refetching;
	// SortFriends guarantees the same order a fresh list would have.
	w.mu.Lock()
	w.dash.friends = models.MergeFriend(w.dash.friends, *friend)
	w.dash.loaded = true
	w.dash.form = friendForm{}
	w.dash.errMsg = ""
	w.mu.Unlock()

	redirectHome(rw, r)
}

func (w *Web) handleSelectFriend(rw http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	w.mu.Lock()
	var selected *models.Friend
	for i := range w.dash.friends {
		if w.dash.friends[i].ID == id {
			selected = &w.dash.friends[i]
			break
		}
	}
	w.prof = profileScreen{}
	w.mu.Unlock()

	if selected != nil {
		w.nav.SelectFriend(*selected)
	}
	redirectHome(rw, r)
}

func (w *Web) handleBack(rw http.ResponseWriter, r *http.Request) {
	w.nav.Back()
	w.mu.Lock()
	w.prof = profileScreen{}
	w.mu.Unlock()
	redirectHome(rw, r)
}

func (w *Web) handleGenerate(rw http.ResponseWriter, r *http.Request) {
	_, selected := w.nav.State()
	if selected == nil {
		redirectHome(rw, r)
		return
	}

	// One generation at a time; a second submission is dropped.
	if !w.generating.tryAcquire() {
		redirectHome(rw, r)
		return
	}
	defer w.generating.release()

	// Prior suggestions are cleared before each attempt, so a failure leaves
	// the suggestion area empty rather than stale.
	w.mu.Lock()
	w.prof = profileScreen{}
	w.mu.Unlock()

	if w.gifts == nil {
		w.logger.Error("Gift generation requested but no generator is configured", "friend_id", selected.ID)
		w.setProfileError(gifts.ErrGeneration.Error())
		redirectHome(rw, r)
		return
	}

	suggestions, err := w.gifts.GiftSuggestions(r.Context(), *selected)
	if err != nil {
		w.setProfileError(err.Error())
		redirectHome(rw, r)
		return
	}

	w.mu.Lock()
	w.prof.suggestions = suggestions
	w.mu.Unlock()
	redirectHome(rw, r)
}

func (w *Web) setAuthError(msg string) {
	w.mu.Lock()
	w.auth.errMsg = msg
	w.mu.Unlock()
}

func (w *Web) setProfileError(msg string) {
	w.mu.Lock()
	w.prof.errMsg = msg
	w.mu.Unlock()
}

func redirectHome(rw http.ResponseWriter, r *http.Request) {
	http.Redirect(rw, r, "/", http.StatusSeeOther)
}
