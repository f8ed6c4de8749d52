package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRunAppliesAllMigrations(t *testing.T) {
	db := openTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	version, err := GetCurrentVersion(db)
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}

	want := AllMigrations[len(AllMigrations)-1].Version
	if version != want {
		t.Errorf("Expected schema version %d, got %d", want, version)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("First Run() error = %v", err)
	}
	if err := Run(db); err != nil {
		t.Fatalf("Second Run() error = %v", err)
	}

	var applied int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatalf("Failed to count applied migrations: %v", err)
	}
	if applied != len(AllMigrations) {
		t.Errorf("Expected %d recorded migrations, got %d", len(AllMigrations), applied)
	}
}

func TestInitSchemaCreatesTables(t *testing.T) {
	db := openTestDB(t)

	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	for _, table := range []string{"document_opens", "operation_views"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

func TestGetCurrentVersionOnFreshDatabase(t *testing.T) {
	db := openTestDB(t)

	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}
	// No schema_migrations table yet; version must read as zero
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		t.Fatalf("Failed to create tracking table: %v", err)
	}

	version, err := GetCurrentVersion(db)
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 0 {
		t.Errorf("Expected version 0 on a fresh database, got %d", version)
	}
}
