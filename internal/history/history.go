// Package history records which documents and operations get opened, so
// the history subcommand can surface recently used specs and hot paths.
// Recording is best-effort: the viewer never fails because history does.
package history

import "time"

// DocumentEntry summarizes the opens of a single document
type DocumentEntry struct {
	Path       string
	Opens      int
	LastOpened time.Time
}

// OperationEntry summarizes the views of a single operation
type OperationEntry struct {
	Document   string
	Path       string
	Method     string
	Views      int
	LastViewed time.Time
}
