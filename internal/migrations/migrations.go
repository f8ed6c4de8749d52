// Package migrations manages the history database schema. The base
// schema is created on first open; versioned migrations evolve it in
// place so existing databases survive upgrades.
package migrations

import (
	"database/sql"
	"fmt"
)

// Migration represents a single database migration
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// AllMigrations contains all database migrations in order
var AllMigrations = []Migration{
	{
		Version: 1,
		Name:    "Add composite index for operation ranking",
		Up: `
			-- TopOperations groups by (document, path, method); a composite
			-- index keeps that aggregation off the table scan
			CREATE INDEX IF NOT EXISTS idx_operation_views_ranking ON operation_views(document, path, method);
		`,
		Down: `
			DROP INDEX IF EXISTS idx_operation_views_ranking;
		`,
	},
}

// InitSchema creates the base tables and indices if they do not exist
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS document_opens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		opened_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_document_opens_path ON document_opens(path);
	CREATE INDEX IF NOT EXISTS idx_document_opens_opened_at ON document_opens(opened_at DESC);

	CREATE TABLE IF NOT EXISTS operation_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		document TEXT NOT NULL,
		path TEXT NOT NULL,
		method TEXT NOT NULL,
		viewed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_operation_views_document ON operation_views(document);
	CREATE INDEX IF NOT EXISTS idx_operation_views_viewed_at ON operation_views(viewed_at DESC);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

// Run executes all pending migrations on the database
func Run(db *sql.DB) error {
	// Initialize schema first to ensure all tables exist
	if err := InitSchema(db); err != nil {
		return err
	}

	// Create migrations tracking table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	// Apply pending migrations
	for _, migration := range AllMigrations {
		if migration.Version <= currentVersion {
			continue
		}

		_, err := db.Exec(migration.Up)
		if err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", migration.Version, migration.Name, err)
		}

		_, err = db.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			migration.Version,
			migration.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// GetCurrentVersion returns the current database schema version
func GetCurrentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`
		SELECT COALESCE(MAX(version), 0)
		FROM schema_migrations
	`).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return version, nil
}
