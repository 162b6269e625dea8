package services

import (
	"context"
	"path/filepath"

	"renum/internal/domain"
	"renum/internal/fileutil"
	"renum/internal/logging"
	"renum/internal/ports"
)

// HistoryService exposes session lookup, lineage tracing, and store
// maintenance over the durable history repository.
type HistoryService struct {
	repo ports.HistoryRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(repo ports.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Sessions returns all recorded sessions, newest first
func (s *HistoryService) Sessions(ctx context.Context) ([]domain.Session, error) {
	return s.repo.Sessions(ctx)
}

// Session retrieves a specific session by id
func (s *HistoryService) Session(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.Session(ctx, id)
}

// TraceOriginalName reconstructs the original filename of a file that may
// have been renamed several times across sessions. Starting from the given
// path it scans sessions newest to oldest; whenever a record's new path
// matches the cursor the cursor moves to that record's old path, so chains
// like A→B (session 1), B→C (session 2) trace C back to A. The scan is a
// full linear pass without memoization; history sizes keep that cheap. The
// second return reports whether any hop was found.
func (s *HistoryService) TraceOriginalName(ctx context.Context, path string) (string, bool, error) {
	sessions, err := s.repo.Sessions(ctx)
	if err != nil {
		return "", false, err
	}

	cursor := fileutil.Resolve(path)
	found := false

	for _, session := range sessions {
		for _, record := range session.Files {
			if fileutil.Resolve(record.NewPath) == cursor {
				cursor = fileutil.Resolve(record.OldPath)
				found = true
			}
		}
	}

	if !found {
		return "", false, nil
	}

	logging.Logger.Debug("Traced original name", "path", path, "original", cursor)
	return filepath.Base(cursor), true, nil
}

// Clear discards all recorded sessions
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
