package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"renum/internal/domain"
	"renum/internal/fileutil"
	"renum/internal/logging"
	"renum/internal/ports"
)

// ExecutorService walks a rename plan and performs the actual filesystem
// operations. Each file's outcome is independent: one failure never aborts
// the remaining entries. Successful renames of a batch are handed to the
// history store as one session.
type ExecutorService struct {
	history ports.HistoryWriter
}

// NewExecutorService creates a new ExecutorService
func NewExecutorService(history ports.HistoryWriter) *ExecutorService {
	return &ExecutorService{history: history}
}

// Execute runs the plan in order, reporting one result per entry. Invalid
// entries become failed results carrying their plan diagnostic without
// touching the filesystem; a source that already resolves to its target is
// a successful no-op. When at least one rename succeeded the successful
// pairs are persisted as a new history session; a fully failed batch
// creates no session.
func (s *ExecutorService) Execute(ctx context.Context, plan []domain.PlanEntry, progress ports.ProgressFunc) []domain.RenameResult {
	results := make([]domain.RenameResult, 0, len(plan))
	var successful []domain.RenameRecord
	total := len(plan)

	for i, entry := range plan {
		if progress != nil {
			progress(i+1, total, entry.SourceName())
		}

		if !entry.Valid {
			results = append(results, domain.RenameResult{
				OldPath: entry.Source,
				NewPath: entry.Target,
				Error:   entry.Diagnostic,
			})
			continue
		}

		if fileutil.SamePath(entry.Source, entry.Target) {
			results = append(results, domain.RenameResult{
				OldPath: entry.Source,
				NewPath: entry.Target,
				Success: true,
			})
			continue
		}

		if err := os.Rename(entry.Source, entry.Target); err != nil {
			diag := classifyRenameError(err)
			logging.Logger.Warn("Rename failed",
				"source", entry.Source, "target", entry.Target, "error", err)
			results = append(results, domain.RenameResult{
				OldPath: entry.Source,
				NewPath: entry.Target,
				Error:   diag,
			})
			continue
		}

		results = append(results, domain.RenameResult{
			OldPath: entry.Source,
			NewPath: entry.Target,
			Success: true,
		})
		successful = append(successful, domain.RenameRecord{
			OldPath: entry.Source,
			NewPath: entry.Target,
		})
	}

	if len(successful) > 0 {
		id, err := s.history.AddSession(ctx, successful)
		if err != nil {
			// The renames themselves succeeded; a history write failure is
			// reported, not raised
			logging.Logger.Warn("Failed to record history session", "error", err)
		} else {
			logging.Logger.Info("Batch executed",
				"session_id", id, "renamed", len(successful), "total", total)
		}
	}

	return results
}

// Undo reverses a session's renames: each record's new path is renamed back
// to its old path, in reverse record order to reduce collision likelihood
// when the original renames were sequential. A missing current file or an
// already occupied restore target is reported as a failure; nothing is ever
// overwritten. Undo consumes history, it never creates a new session.
func (s *ExecutorService) Undo(ctx context.Context, session domain.Session, progress ports.ProgressFunc) []domain.RenameResult {
	total := len(session.Files)
	results := make([]domain.RenameResult, 0, total)

	for i := total - 1; i >= 0; i-- {
		record := session.Files[i]
		current := record.NewPath
		original := record.OldPath

		if progress != nil {
			progress(total-i, total, filepath.Base(current))
		}

		if !fileutil.Exists(current) {
			results = append(results, domain.RenameResult{
				OldPath: current,
				NewPath: original,
				Error:   "File not found",
			})
			continue
		}

		if fileutil.Exists(original) {
			results = append(results, domain.RenameResult{
				OldPath: current,
				NewPath: original,
				Error:   "Target path already exists",
			})
			continue
		}

		if err := os.Rename(current, original); err != nil {
			results = append(results, domain.RenameResult{
				OldPath: current,
				NewPath: original,
				Error:   classifyRenameError(err),
			})
			continue
		}

		results = append(results, domain.RenameResult{
			OldPath: current,
			NewPath: original,
			Success: true,
		})
	}

	logging.Logger.Info("Session undone", "session_id", session.ID, "records", total)
	return results
}

// Verify computes aggregate statistics over a result list. Skipped counts
// the failures whose diagnostic mentions skipping.
func (s *ExecutorService) Verify(results []domain.RenameResult) domain.Summary {
	summary := domain.Summary{Total: len(results)}

	for _, r := range results {
		if r.Success {
			summary.Successful++
			continue
		}
		summary.Failed++
		if strings.Contains(strings.ToLower(r.Error), "skip") {
			summary.Skipped++
		}
		summary.Failures = append(summary.Failures, r)
	}

	if summary.Total > 0 {
		summary.SuccessRate = float64(summary.Successful) / float64(summary.Total) * 100
	}

	return summary
}

// classifyRenameError maps an os.Rename failure to a caller-facing
// diagnostic
func classifyRenameError(err error) string {
	if errors.Is(err, os.ErrPermission) {
		return "Permission denied - file may be locked or in use"
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return fmt.Sprintf("OS Error: %v", linkErr.Err)
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("OS Error: %v", pathErr.Err)
	}

	return fmt.Sprintf("Unexpected error: %v", err)
}
