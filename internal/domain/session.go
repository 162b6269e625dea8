package domain

import "time"

// RenameRecord is one successful old→new rename inside a session
type RenameRecord struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
}

// Session is a persisted batch of successful renames, undoable as a unit.
// Sessions are immutable once written; the history store keeps them newest
// first.
type Session struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Count     int            `json:"count"`
	Files     []RenameRecord `json:"files"`
}
