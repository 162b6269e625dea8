package ports

import (
	"context"

	"renum/internal/domain"
)

// HistoryReader reads persisted rename sessions
type HistoryReader interface {
	// Sessions returns all sessions, newest first
	Sessions(ctx context.Context) ([]domain.Session, error)
	// Session looks a session up by id, returning domain.ErrSessionNotFound
	// when absent
	Session(ctx context.Context, id string) (*domain.Session, error)
}

// HistoryWriter appends and clears rename sessions
type HistoryWriter interface {
	// AddSession persists the given records as a new session and returns its
	// id. An empty record list is a no-op and returns an empty id.
	AddSession(ctx context.Context, records []domain.RenameRecord) (string, error)
	// Clear discards all sessions
	Clear(ctx context.Context) error
}

// HistoryRepository is the composite interface over the durable history
// store
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
	Close() error
}
