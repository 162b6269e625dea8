package domain

import "path/filepath"

// PlanEntry is one proposed rename: source, synthesized target, and whether
// the operation passed validation. Invalid entries carry the failing reason.
type PlanEntry struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Valid      bool   `json:"valid"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// SourceName returns the filename component of the source path
func (e PlanEntry) SourceName() string {
	return filepath.Base(e.Source)
}

// TargetName returns the filename component of the target path
func (e PlanEntry) TargetName() string {
	return filepath.Base(e.Target)
}

// RenameResult is the per-file outcome of executing one plan entry
type RenameResult struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Summary aggregates the outcome of a batch execution
type Summary struct {
	Total       int            `json:"total"`
	Successful  int            `json:"successful"`
	Failed      int            `json:"failed"`
	Skipped     int            `json:"skipped"`
	SuccessRate float64        `json:"success_rate"`
	Failures    []RenameResult `json:"failures,omitempty"`
}
