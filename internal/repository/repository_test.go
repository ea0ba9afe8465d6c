package repository_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stridehq/stride/internal/db"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}

	return database
}
