package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"freundebuch/internal/auth"
	"freundebuch/internal/config"
	"freundebuch/internal/gifts"
	"freundebuch/internal/middleware"
	"freundebuch/internal/service"
	"freundebuch/internal/session"
	"freundebuch/internal/storage/sqlite"
	"freundebuch/internal/view"
	"freundebuch/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	// Without a session secret the app refuses to initialize and serves the
	// setup instructions on every route instead.
	if cfg.SetupRequired() {
		slog.Error("Session secret not configured, serving setup instructions",
			"hint", "set FREUNDEBUCH_SESSION_SECRET or edit internal/config/config.go")
		serve(cfg.Addr, service.SetupHandler())
		return
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	authenticator := auth.NewPasswordAuthenticator(store, !cfg.RequireConfirmation)
	tokens := auth.NewJWTManager(cfg.SessionSecret, cfg.SessionTTL)
	gateway := session.NewGateway(authenticator, tokens, cfg.SessionTokenPath, slog.Default())
	gateway.Restore()

	// A missing Gemini key is not fatal: the profile screen surfaces the
	// failure when suggestions are first requested.
	var generator service.SuggestionGenerator
	if g, err := gifts.New(context.Background(), cfg.GeminiAPIKey, slog.Default()); err != nil {
		slog.Error("Gift suggestion generator unavailable", "error", err)
	} else {
		generator = g
	}

	nav := view.NewController()
	web := service.NewWeb(gateway, store, generator, nav, slog.Default())

	// The one session subscription of the process; released on shutdown.
	cancel := gateway.Subscribe(web.OnSessionChange)
	defer cancel()
	web.OnSessionChange(gateway.Current())

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", web.Routes())

	serve(cfg.Addr, r)
}

func serve(addr string, handler http.Handler) {
	slog.Info("Server starting", "address", addr, "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
