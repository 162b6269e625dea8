// Package validate holds the stateless predicate functions that check
// candidate names, separators, and rename pairs against filesystem and
// naming-convention constraints. Every function returns (valid, diagnostic)
// and has no side effects.
package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"renum/internal/fileutil"
)

// Filesystem constraints, applied uniformly on every platform so plans made
// on one OS stay portable to the most restrictive one.
const (
	ForbiddenChars     = `<>:"/\|?*`
	MaxFilenameLength  = 255
	MaxPathLength      = 260
	MaxSeparatorLength = 5
	MaxStartNumber     = 999999
)

// reservedNames are the Windows device names that can never be used as a
// base name, matched case-insensitively.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// BaseName checks a candidate base name for batch renaming
func BaseName(name string) (bool, string) {
	if strings.TrimSpace(name) == "" {
		return false, "Base name cannot be empty"
	}

	if found := forbiddenIn(name); len(found) > 0 {
		return false, fmt.Sprintf("Base name contains forbidden characters: %s", strings.Join(found, ", "))
	}

	if _, reserved := reservedNames[strings.ToUpper(name)]; reserved {
		return false, fmt.Sprintf("'%s' is a reserved system name and cannot be used", name)
	}

	if name != strings.TrimSpace(name) {
		return false, "Base name cannot have leading or trailing spaces"
	}

	if strings.HasSuffix(name, ".") {
		return false, "Base name cannot end with a period"
	}

	return true, ""
}

// Separator checks a candidate separator. Empty separators are allowed.
func Separator(sep string) (bool, string) {
	if sep == "" {
		return true, ""
	}

	if found := forbiddenIn(sep); len(found) > 0 {
		return false, "Separator contains forbidden characters"
	}

	if len(sep) > MaxSeparatorLength {
		return false, fmt.Sprintf("Separator is too long (max: %d characters)", MaxSeparatorLength)
	}

	return true, ""
}

// StartNumber checks the starting number for sequential renaming
func StartNumber(n int) (bool, string) {
	if n < 0 {
		return false, "Starting number must be non-negative"
	}
	if n > MaxStartNumber {
		return false, fmt.Sprintf("Starting number is too large (max: %d)", MaxStartNumber)
	}
	return true, ""
}

// FileAccess checks that a path exists, is a regular file, and can be
// opened for append. Opening for append does not truncate and fails on
// exclusively locked files, which makes it a usable lock probe.
func FileAccess(path string) (bool, string) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, "File does not exist"
		}
		return false, fmt.Sprintf("Cannot access file: %v", err)
	}

	if !info.Mode().IsRegular() {
		return false, "Path is not a file"
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return false, "File is locked or you don't have permission"
		}
		return false, fmt.Sprintf("Cannot access file: %v", err)
	}
	f.Close()

	return true, ""
}

// PathLength checks that a candidate path stays inside the filename and
// full-path limits
func PathLength(path string) (bool, string) {
	name := filepath.Base(path)
	if len(name) > MaxFilenameLength {
		return false, fmt.Sprintf("Filename too long (%d > %d chars)", len(name), MaxFilenameLength)
	}

	full := fileutil.Resolve(path)
	if len(full) > MaxPathLength {
		return false, fmt.Sprintf("Full path too long (%d > %d chars)", len(full), MaxPathLength)
	}

	return true, ""
}

// RenamePair checks a single source→target rename before execution.
// Failing reasons are reported in a fixed precedence order: source
// existence, source accessibility, identity, target length, target
// directory writability.
func RenamePair(oldPath, newPath string) (bool, string) {
	if !fileutil.Exists(oldPath) {
		return false, fmt.Sprintf("Source file does not exist: %s", filepath.Base(oldPath))
	}

	if ok, diag := FileAccess(oldPath); !ok {
		return false, diag
	}

	if fileutil.SamePath(oldPath, newPath) {
		return false, "Source and destination are the same"
	}

	if ok, diag := PathLength(newPath); !ok {
		return false, diag
	}

	dir := filepath.Dir(newPath)
	if !dirWritable(dir) {
		return false, fmt.Sprintf("Destination directory is not writable: %s", dir)
	}

	return true, ""
}

// BatchAccess summarizes the accessibility of an input file list
type BatchAccess struct {
	Total      int
	Accessible int
	Locked     int
	Missing    int
	Errors     []FileError
}

// FileError pairs a file with its accessibility diagnostic
type FileError struct {
	File  string
	Error string
}

// FilesList checks a list of files for batch renaming and reports how many
// are accessible, locked, or missing. The list is invalid when it is empty
// or when no file in it is accessible.
func FilesList(files []string) (bool, string, BatchAccess) {
	if len(files) == 0 {
		return false, "No files selected", BatchAccess{}
	}

	access := BatchAccess{Total: len(files)}
	for _, path := range files {
		ok, diag := FileAccess(path)
		if ok {
			access.Accessible++
			continue
		}
		switch {
		case strings.Contains(diag, "does not exist"):
			access.Missing++
		case strings.Contains(strings.ToLower(diag), "locked"),
			strings.Contains(strings.ToLower(diag), "permission"):
			access.Locked++
		}
		access.Errors = append(access.Errors, FileError{File: path, Error: diag})
	}

	if access.Accessible == 0 {
		return false, "No accessible files found", access
	}

	return true, "", access
}

func forbiddenIn(s string) []string {
	var found []string
	for _, c := range ForbiddenChars {
		if strings.ContainsRune(s, c) {
			found = append(found, string(c))
		}
	}
	return found
}
