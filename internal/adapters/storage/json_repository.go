// Package storage provides the JSON-file-backed history repository.
// The store is a single document holding all sessions newest first,
// rewritten wholesale on every mutation. Unreadable or corrupt state
// degrades to an empty store instead of failing.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"renum/internal/domain"
	"renum/internal/logging"
)

const defaultHistoryFile = "history.json"

// historyDocument is the on-disk shape of the history store
type historyDocument struct {
	Sessions []domain.Session `json:"sessions"`
}

// JSONRepository implements ports.HistoryRepository on a JSON file.
// Concurrent use from one process is safe; concurrent writers from multiple
// processes are the caller's responsibility (single writer per store path).
type JSONRepository struct {
	path string
	mu   sync.RWMutex
	data historyDocument
}

// NewJSONRepository opens (or initializes) the history store at path.
// An empty path falls back to history.json under the user home directory,
// for standalone use without a configured location.
func NewJSONRepository(path string) (*JSONRepository, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, defaultHistoryFile)
	}

	r := &JSONRepository{path: path}
	r.load()
	return r, nil
}

// load reads the store from disk. Missing, unreadable, or corrupt files all
// leave the store empty.
func (r *JSONRepository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("History store unreadable, starting empty",
				"path", r.path, "error", err)
		}
		r.data = historyDocument{}
		return
	}

	var doc historyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Logger.Warn("History store corrupt, starting empty",
			"path", r.path, "error", err)
		r.data = historyDocument{}
		return
	}
	r.data = doc
}

// persist rewrites the whole store. Callers must hold the write lock.
func (r *JSONRepository) persist() error {
	data, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// AddSession prepends a new session holding the given records and persists
// the store. Empty input is a no-op. The session stays in memory even when
// the write fails; the write error is returned for reporting.
func (r *JSONRepository) AddSession(ctx context.Context, records []domain.RenameRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session := domain.Session{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Count:     len(records),
		Files:     records,
	}
	r.data.Sessions = append([]domain.Session{session}, r.data.Sessions...)

	if err := r.persist(); err != nil {
		logging.Logger.Warn("Failed to persist history session",
			"session_id", session.ID, "error", err)
		return session.ID, err
	}

	logging.Logger.Debug("History session persisted",
		"session_id", session.ID, "records", len(records))
	return session.ID, nil
}

// Sessions returns all sessions, newest first
func (r *JSONRepository) Sessions(ctx context.Context) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]domain.Session, len(r.data.Sessions))
	copy(sessions, r.data.Sessions)
	return sessions, nil
}

// Session looks up a session by id
func (r *JSONRepository) Session(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.data.Sessions {
		if r.data.Sessions[i].ID == id {
			session := r.data.Sessions[i]
			return &session, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

// Clear discards all sessions and persists the empty store
func (r *JSONRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = historyDocument{}
	return r.persist()
}

// Close releases the repository. The JSON store keeps no open handles.
func (r *JSONRepository) Close() error {
	return nil
}
