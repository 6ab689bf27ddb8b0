// Command confirm marks a pending account as verified. It stands in for the
// email confirmation step when FREUNDEBUCH_REQUIRE_CONFIRMATION is enabled.
//
// Usage:
//
//	confirm -db ./data/freundebuch.db -email user@example.com
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"freundebuch/internal/storage/sqlite"
	"freundebuch/pkg/logging"
)

func main() {
	dbPath := flag.String("db", "./data/freundebuch.db", "path to the SQLite database")
	email := flag.String("email", "", "email of the account to confirm")
	flag.Parse()

	logging.Setup()

	if *email == "" {
		slog.Error("Missing -email flag")
		os.Exit(1)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ConfirmUser(context.Background(), *email); err != nil {
		slog.Error("Failed to confirm account", "email", *email, "error", err)
		os.Exit(1)
	}

	slog.Info("Account confirmed", "email", *email)
}
