package domain

import (
	"fmt"
	"strconv"
)

// SortMethod determines the order files are numbered in
type SortMethod string

const (
	SortAlphabetical     SortMethod = "alphabetical"
	SortDateModified     SortMethod = "date_modified"
	SortDateModifiedDesc SortMethod = "date_modified_desc"
	SortDateCreated      SortMethod = "date_created"
	SortDateCreatedDesc  SortMethod = "date_created_desc"
	SortSelectionOrder   SortMethod = "selection_order"
)

// ParseSortMethod maps a string to a SortMethod.
// Unknown values fall back to alphabetical.
func ParseSortMethod(s string) SortMethod {
	switch SortMethod(s) {
	case SortAlphabetical, SortDateModified, SortDateModifiedDesc,
		SortDateCreated, SortDateCreatedDesc, SortSelectionOrder:
		return SortMethod(s)
	default:
		return SortAlphabetical
	}
}

// SortMethods lists all supported sort methods with display labels
var SortMethods = []struct {
	Method SortMethod
	Label  string
}{
	{SortAlphabetical, "Alphabetical (A-Z)"},
	{SortDateModified, "Date Modified (Oldest First)"},
	{SortDateModifiedDesc, "Date Modified (Newest First)"},
	{SortDateCreated, "Date Created (Oldest First)"},
	{SortDateCreatedDesc, "Date Created (Newest First)"},
	{SortSelectionOrder, "Selection Order"},
}

// ConflictStrategy determines how target-path collisions are resolved
type ConflictStrategy string

const (
	ConflictSkip          ConflictStrategy = "skip"
	ConflictAddSuffix     ConflictStrategy = "add_suffix"
	ConflictAutoIncrement ConflictStrategy = "auto_increment"
	ConflictPrompt        ConflictStrategy = "prompt"
)

// ConflictStrategies lists all supported strategies with display labels
var ConflictStrategies = []struct {
	Strategy ConflictStrategy
	Label    string
}{
	{ConflictSkip, "Skip (Keep Original)"},
	{ConflictAddSuffix, "Add Suffix (_copy)"},
	{ConflictAutoIncrement, "Auto-increment Number"},
	{ConflictPrompt, "Prompt for Each"},
}

// PaddingMode selects how index numbers are zero-padded.
// "auto" derives the width from the file count, "none" disables padding,
// a numeric string is a literal width.
type PaddingMode string

const (
	PaddingAuto PaddingMode = "auto"
	PaddingNone PaddingMode = "none"
)

// Width returns the zero-padding width for the given batch size.
// Unrecognized modes behave like auto.
func (p PaddingMode) Width(totalFiles int) int {
	switch p {
	case PaddingNone:
		return 0
	case PaddingAuto, "":
	default:
		if w, err := strconv.Atoi(string(p)); err == nil && w >= 0 {
			return w
		}
	}
	switch {
	case totalFiles < 10:
		return 0
	case totalFiles < 100:
		return 2
	case totalFiles < 1000:
		return 3
	default:
		return 4
	}
}

// Default naming policy values
const (
	DefaultBaseName         = "file"
	DefaultSeparator        = "_"
	DefaultStartNumber      = 1
	DefaultSortMethod       = SortAlphabetical
	DefaultConflictStrategy = ConflictAutoIncrement
	DefaultPadding          = PaddingAuto
)

// RenameConfig is the naming policy for a single batch.
// It is an immutable snapshot during plan generation; callers build a new
// one per preview cycle.
type RenameConfig struct {
	BaseName         string
	StartNumber      int
	Separator        string
	SortMethod       SortMethod
	ConflictStrategy ConflictStrategy
	Padding          PaddingMode
}

// DefaultRenameConfig returns a config with the standard defaults
func DefaultRenameConfig() RenameConfig {
	return RenameConfig{
		BaseName:         DefaultBaseName,
		StartNumber:      DefaultStartNumber,
		Separator:        DefaultSeparator,
		SortMethod:       DefaultSortMethod,
		ConflictStrategy: DefaultConflictStrategy,
		Padding:          DefaultPadding,
	}
}

// FormatIndex renders an index with the given zero-padding width.
// Width 0 renders a plain decimal.
func FormatIndex(index, width int) string {
	if width > 0 {
		return fmt.Sprintf("%0*d", width, index)
	}
	return strconv.Itoa(index)
}

// TargetName synthesizes the filename for the given index:
// base name + separator + padded index + extension.
func (c RenameConfig) TargetName(index, totalFiles int, extension string) string {
	return c.BaseName + c.Separator + FormatIndex(index, c.Padding.Width(totalFiles)) + extension
}
