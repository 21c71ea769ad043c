package shared

import "testing"

func TestNewDatabase(t *testing.T) {
	t.Run("in-memory pool is capped at one connection", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		// A second pooled connection to ":memory:" would be a different,
		// empty database.
		if got := db.Stats().MaxOpenConnections; got != 1 {
			t.Errorf("expected 1 max open connection, got %d", got)
		}

		if _, err := db.Exec("CREATE TABLE scratch (id TEXT PRIMARY KEY)"); err != nil {
			t.Fatalf("failed to create table: %v", err)
		}
		if _, err := db.Exec("INSERT INTO scratch (id) VALUES ('a')"); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM scratch").Scan(&count); err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 1 {
			t.Errorf("expected the same database on every call, got %d rows", count)
		}
	})

	t.Run("file path", func(t *testing.T) {
		db, err := NewDatabase(t.TempDir() + "/test.db")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			t.Errorf("database should be reachable: %v", err)
		}
	})
}
