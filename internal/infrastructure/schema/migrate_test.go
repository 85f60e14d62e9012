package schema

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count); err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	return count == 1
}

func TestUp_SQLite(t *testing.T) {
	db := openSQLite(t)

	m, err := New(db, "SQLite")
	if err != nil {
		t.Fatalf("new migrator: %v", err)
	}

	if err := Up(m); err != nil {
		t.Fatalf("up: %v", err)
	}
	// second run is a no-op
	if err := Up(m); err != nil {
		t.Fatalf("repeated up: %v", err)
	}

	for _, table := range []string{"all_teams_ucl", "standing"} {
		if !tableExists(t, db, table) {
			t.Fatalf("expected table %s after up", table)
		}
	}

	version, dirty, err := m.Version()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != 2 || dirty {
		t.Fatalf("unexpected version=%d dirty=%v", version, dirty)
	}

	if err := m.Steps(-1); err != nil {
		t.Fatalf("step down: %v", err)
	}
	if tableExists(t, db, "standing") {
		t.Fatalf("expected standing to be dropped")
	}
	if !tableExists(t, db, "all_teams_ucl") {
		t.Fatalf("expected all_teams_ucl to survive one step down")
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New(nil, "sqlite"); err == nil {
		t.Fatalf("expected error for nil db")
	}
	if _, err := New(openSQLite(t), "mysql"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
