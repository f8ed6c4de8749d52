package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/studiowebux/oasview/internal/migrations"
)

const timestampFormat = "2006-01-02 15:04:05"

// Recorder persists usage history in a SQLite database. A nil Recorder is
// valid and records nothing, which is how the --no-history flag is wired.
type Recorder struct {
	db *sql.DB
}

func NewRecorder(dbPath string) (*Recorder, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return &Recorder{db: db}, nil
}

// RecordOpen notes that a document was opened
func (r *Recorder) RecordOpen(path string) error {
	if r == nil || r.db == nil {
		return nil
	}

	timestampStr := time.Now().Local().Format(timestampFormat)
	_, err := r.db.Exec(
		"INSERT INTO document_opens (path, opened_at) VALUES (?, ?)",
		path, timestampStr,
	)
	if err != nil {
		return fmt.Errorf("failed to record document open: %w", err)
	}

	return nil
}

// RecordView notes that an operation was selected in a document
func (r *Recorder) RecordView(document, path, method string) error {
	if r == nil || r.db == nil {
		return nil
	}

	timestampStr := time.Now().Local().Format(timestampFormat)
	_, err := r.db.Exec(
		"INSERT INTO operation_views (document, path, method, viewed_at) VALUES (?, ?, ?, ?)",
		document, path, method, timestampStr,
	)
	if err != nil {
		return fmt.Errorf("failed to record operation view: %w", err)
	}

	return nil
}

// RecentDocuments returns documents ordered by most recent open.
// A limit of zero or less defaults to 10.
func (r *Recorder) RecentDocuments(limit int) ([]DocumentEntry, error) {
	if r == nil || r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT path, COUNT(*), MAX(opened_at)
		FROM document_opens
		GROUP BY path
		ORDER BY MAX(opened_at) DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent documents: %w", err)
	}
	defer rows.Close()

	var entries []DocumentEntry
	for rows.Next() {
		var entry DocumentEntry
		var openedAt string

		if err := rows.Scan(&entry.Path, &entry.Opens, &openedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document entry: %w", err)
		}
		entry.LastOpened = parseTimestamp(openedAt)

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// TopOperations returns the most viewed operations, optionally restricted
// to one document. An empty document matches all documents. A limit of
// zero or less defaults to 10.
func (r *Recorder) TopOperations(document string, limit int) ([]OperationEntry, error) {
	if r == nil || r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT document, path, method, COUNT(*), MAX(viewed_at)
		FROM operation_views
		WHERE document = ? OR ? = ''
		GROUP BY document, path, method
		ORDER BY COUNT(*) DESC, path ASC, method ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, document, document, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top operations: %w", err)
	}
	defer rows.Close()

	var entries []OperationEntry
	for rows.Next() {
		var entry OperationEntry
		var viewedAt string

		if err := rows.Scan(&entry.Document, &entry.Path, &entry.Method, &entry.Views, &viewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation entry: %w", err)
		}
		entry.LastViewed = parseTimestamp(viewedAt)

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Counts returns the number of recorded opens and views
func (r *Recorder) Counts() (opens int, views int, err error) {
	if r == nil || r.db == nil {
		return 0, 0, nil
	}

	if err := r.db.QueryRow("SELECT COUNT(*) FROM document_opens").Scan(&opens); err != nil {
		return 0, 0, fmt.Errorf("failed to count document opens: %w", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM operation_views").Scan(&views); err != nil {
		return 0, 0, fmt.Errorf("failed to count operation views: %w", err)
	}

	return opens, views, nil
}

// Clear removes all recorded history
func (r *Recorder) Clear() error {
	if r == nil || r.db == nil {
		return nil
	}

	if _, err := r.db.Exec("DELETE FROM document_opens"); err != nil {
		return fmt.Errorf("failed to clear document opens: %w", err)
	}
	if _, err := r.db.Exec("DELETE FROM operation_views"); err != nil {
		return fmt.Errorf("failed to clear operation views: %w", err)
	}

	return nil
}

func (r *Recorder) Close() error {
	if r != nil && r.db != nil {
		return r.db.Close()
	}
	return nil
}

// parseTimestamp reads the stored local-time format, falling back to
// RFC3339 for rows written by other tools
func parseTimestamp(value string) time.Time {
	parsed, err := time.ParseInLocation(timestampFormat, value, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Now()
		}
	}
	return parsed
}
