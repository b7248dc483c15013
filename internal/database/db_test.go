package database_test

import (
	"testing"

	"restobook/internal/database"
)

func TestOpenAppliesMigrations(t *testing.T) {
	db, err := database.Open("file:db_migrations?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"users", "restaurants", "reservations", "schema_migrations"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if version < 1 {
		t.Errorf("schema version %d, want >= 1", version)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	const dsn = "file:db_idempotent?mode=memory&cache=shared"

	first, err := database.Open(dsn)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	defer first.Close()

	// Applying migrations over an up-to-date schema must be a no-op.
	second, err := database.Open(dsn)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()
}
