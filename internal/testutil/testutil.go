package testutil

import (
	"database/sql"
	"testing"
	"time"

	"restobook/internal/database"
	"restobook/internal/utils"
)

// OpenDB opens an in-memory SQLite database and applies migrations.
// A shared-cache named database is used so all pooled connections see the
// same data. The database is closed via t.Cleanup.
func OpenDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := database.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SignToken returns a signed access token for the given identity. A negative
// ttl produces an already-expired token.
func SignToken(t *testing.T, secret []byte, userID int64, username string, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, username, ttl, secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
