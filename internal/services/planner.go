package services

import (
	"context"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"renum/internal/domain"
	"renum/internal/fileutil"
	"renum/internal/logging"
	"renum/internal/validate"
)

// Forward search limit for auto_increment before falling back to a
// timestamp-suffixed name.
const maxIncrementAttempts = 10000

// Concurrent stat calls while collecting sort keys for time-based sorts
const maxStatConcurrency = 8

// PlannerService turns a file list and a naming policy into an ordered
// rename plan. Planning has no side effects and is deterministic against an
// unchanged filesystem, so it is safe to call repeatedly between preview
// cycles.
type PlannerService struct{}

// NewPlannerService creates a new PlannerService
func NewPlannerService() *PlannerService {
	return &PlannerService{}
}

// Plan sorts the input files, synthesizes sequential target names, detects
// and resolves conflicts per the configured strategy, and validates every
// resulting pair. A bad individual file never fails the call; its entry is
// marked invalid with a diagnostic. An empty file list yields an empty
// plan.
func (p *PlannerService) Plan(ctx context.Context, files []string, cfg domain.RenameConfig) ([]domain.PlanEntry, error) {
	if len(files) == 0 {
		return []domain.PlanEntry{}, nil
	}

	sorted, err := p.sortFiles(ctx, files, cfg.SortMethod)
	if err != nil {
		return nil, err
	}

	total := len(sorted)

	// Synthesize the initial targets in sorted order
	type draft struct {
		source string
		target string
		index  int
	}
	drafts := make([]draft, total)
	index := cfg.StartNumber
	for i, file := range sorted {
		resolved := fileutil.Resolve(file)
		name := cfg.TargetName(index, total, filepath.Ext(resolved))
		drafts[i] = draft{
			source: resolved,
			target: filepath.Join(filepath.Dir(resolved), name),
			index:  index,
		}
		index++
	}

	// A target conflicts when a file already exists there (and it is not the
	// source itself) or when two entries synthesize the same path
	conflicted := make(map[string]bool)
	for _, d := range drafts {
		if fileutil.Exists(d.target) && !fileutil.SamePath(d.source, d.target) {
			conflicted[d.target] = true
		}
	}
	seen := make(map[string]bool, total)
	for _, d := range drafts {
		if seen[d.target] {
			conflicted[d.target] = true
		}
		seen[d.target] = true
	}

	// Resolve conflicts and validate. claimed tracks targets already taken
	// by earlier entries so resolving strategies never produce duplicate
	// final targets within one plan.
	claimed := make(map[string]bool, total)
	entries := make([]domain.PlanEntry, 0, total)
	for _, d := range drafts {
		target := d.target

		if conflicted[target] || claimed[target] {
			if cfg.ConflictStrategy == domain.ConflictSkip {
				entries = append(entries, domain.PlanEntry{
					Source:     d.source,
					Target:     target,
					Valid:      false,
					Diagnostic: "File already exists (will be skipped)",
				})
				continue
			}
			target = p.resolveConflict(cfg.ConflictStrategy, cfg, target, d.index, total, claimed)
		}

		valid, diag := validate.RenamePair(d.source, target)
		claimed[target] = true
		entries = append(entries, domain.PlanEntry{
			Source:     d.source,
			Target:     target,
			Valid:      valid,
			Diagnostic: diag,
		})
	}

	logging.Logger.Debug("Plan generated",
		"files", total, "strategy", string(cfg.ConflictStrategy), "sort", string(cfg.SortMethod))
	return entries, nil
}

// ResolveEntry re-resolves a single conflicted plan entry with an
// explicitly chosen strategy and re-validates it. Interactive callers use
// this to settle entries left unresolved by the prompt strategy; index is
// the sequential number originally assigned to the entry and claimed holds
// the targets already taken by the rest of the plan.
func (p *PlannerService) ResolveEntry(entry domain.PlanEntry, strategy domain.ConflictStrategy, index, total int, cfg domain.RenameConfig, claimed map[string]bool) domain.PlanEntry {
	if strategy == domain.ConflictSkip {
		entry.Valid = false
		entry.Diagnostic = "File already exists (will be skipped)"
		return entry
	}

	entry.Target = p.resolveConflict(strategy, cfg, entry.Target, index, total, claimed)
	entry.Valid, entry.Diagnostic = validate.RenamePair(entry.Source, entry.Target)
	claimed[entry.Target] = true
	return entry
}

// Conflicts returns the indexes of plan entries whose target collides with
// an existing file outside the plan or with another entry's target. Under
// the prompt strategy these are the entries an interactive caller must
// settle before execution.
func (p *PlannerService) Conflicts(plan []domain.PlanEntry) []int {
	targets := make(map[string]int)
	for _, entry := range plan {
		targets[entry.Target]++
	}

	var conflicted []int
	for i, entry := range plan {
		if targets[entry.Target] > 1 {
			conflicted = append(conflicted, i)
			continue
		}
		if fileutil.Exists(entry.Target) && !fileutil.SamePath(entry.Source, entry.Target) {
			conflicted = append(conflicted, i)
		}
	}
	return conflicted
}

// resolveConflict produces an unused target path for a conflicting one.
// Skip, prompt, and unknown strategies leave the target unchanged.
func (p *PlannerService) resolveConflict(strategy domain.ConflictStrategy, cfg domain.RenameConfig, target string, index, total int, claimed map[string]bool) string {
	taken := func(path string) bool {
		return claimed[path] || fileutil.Exists(path)
	}

	switch strategy {
	case domain.ConflictAddSuffix:
		ext := filepath.Ext(target)
		stem := strings.TrimSuffix(filepath.Base(target), ext)
		dir := filepath.Dir(target)

		for counter := 1; ; counter++ {
			suffix := "_copy"
			if counter > 1 {
				suffix += strconv.Itoa(counter)
			}
			candidate := filepath.Join(dir, stem+suffix+ext)
			if !taken(candidate) {
				return candidate
			}
		}

	case domain.ConflictAutoIncrement:
		ext := filepath.Ext(target)
		dir := filepath.Dir(target)

		for searchIndex := index; searchIndex <= index+maxIncrementAttempts; searchIndex++ {
			candidate := filepath.Join(dir, cfg.TargetName(searchIndex, total, ext))
			if !taken(candidate) {
				return candidate
			}
		}

		// No free index within the search window; a timestamp suffix is
		// unique enough to guarantee termination
		timestamp := time.Now().Format("20060102_150405")
		return filepath.Join(dir, cfg.BaseName+cfg.Separator+timestamp+ext)

	default:
		return target
	}
}

// sortFiles orders the input per the configured method. Unknown methods
// fall back to case-insensitive alphabetical; selection order preserves the
// input as given.
func (p *PlannerService) sortFiles(ctx context.Context, files []string, method domain.SortMethod) ([]string, error) {
	sorted := make([]string, len(files))
	copy(sorted, files)

	switch method {
	case domain.SortSelectionOrder:
		return sorted, nil

	case domain.SortDateModified, domain.SortDateModifiedDesc,
		domain.SortDateCreated, domain.SortDateCreatedDesc:
		times, err := p.collectTimes(ctx, sorted)
		if err != nil {
			return nil, err
		}

		key := func(f string) time.Time {
			if method == domain.SortDateCreated || method == domain.SortDateCreatedDesc {
				return times[f].Created
			}
			return times[f].Modified
		}
		desc := method == domain.SortDateModifiedDesc || method == domain.SortDateCreatedDesc

		sort.SliceStable(sorted, func(i, j int) bool {
			if desc {
				return key(sorted[j]).Before(key(sorted[i]))
			}
			return key(sorted[i]).Before(key(sorted[j]))
		})
		return sorted, nil

	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(filepath.Base(sorted[i])) < strings.ToLower(filepath.Base(sorted[j]))
		})
		return sorted, nil
	}
}

// collectTimes stats all files concurrently so the sort comparator works on
// an immutable snapshot and never touches the filesystem. Files that cannot
// be stat'd sort first with zero timestamps; validation flags them later.
func (p *PlannerService) collectTimes(ctx context.Context, files []string) (map[string]fileutil.Times, error) {
	collected := make([]fileutil.Times, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxStatConcurrency)
	for i, file := range files {
		g.Go(func() error {
			t, err := fileutil.StatTimes(file)
			if err != nil {
				logging.Logger.Debug("Failed to stat file for sorting",
					"file", file, "error", err)
				return nil
			}
			collected[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	times := make(map[string]fileutil.Times, len(files))
	for i, file := range files {
		times[file] = collected[i]
	}
	return times, nil
}
