package cmd

import (
	"fmt"

	"renum/internal/config"
	"renum/internal/domain"
	"renum/internal/fileutil"
	"renum/internal/logging"
	"renum/internal/validate"
)

// NamingFlags are the naming-policy flags shared by plan and apply
type NamingFlags struct {
	Base       string `help:"Base name for the new filenames" default:"file"`
	Separator  string `help:"Separator between base name and number" default:"_"`
	Start      int    `help:"Starting number" default:"1"`
	Sort       string `help:"Sort method" enum:"alphabetical,date_modified,date_modified_desc,date_created,date_created_desc,selection_order" default:"alphabetical"`
	OnConflict string `help:"Conflict resolution strategy" enum:"skip,add_suffix,auto_increment,prompt" default:"auto_increment"`
	Padding    string `help:"Index zero-padding" enum:"auto,none,2,3,4" default:"auto"`
}

// buildConfig merges settings defaults with explicitly set flags and
// validates the result. A flag left at its built-in default defers to the
// settings file, matching the flag > settings > default precedence.
// A malformed policy is a hard error; everything file-related is reported
// per entry later, never raised here.
func (f NamingFlags) buildConfig(settings *config.Settings) (domain.RenameConfig, error) {
	if settings == nil {
		settings = &config.Settings{}
	}
	cfg := settings.RenameConfig()

	if f.Base != domain.DefaultBaseName {
		cfg.BaseName = f.Base
	}
	if f.Separator != domain.DefaultSeparator {
		cfg.Separator = f.Separator
	}
	if f.Start != domain.DefaultStartNumber {
		cfg.StartNumber = f.Start
	}
	if f.Sort != string(domain.DefaultSortMethod) {
		cfg.SortMethod = domain.ParseSortMethod(f.Sort)
	}
	if f.OnConflict != string(domain.DefaultConflictStrategy) {
		cfg.ConflictStrategy = domain.ConflictStrategy(f.OnConflict)
	}
	if f.Padding != string(domain.DefaultPadding) {
		cfg.Padding = domain.PaddingMode(f.Padding)
	}

	if ok, diag := validate.BaseName(cfg.BaseName); !ok {
		return cfg, fmt.Errorf("invalid base name: %s", diag)
	}
	if ok, diag := validate.Separator(cfg.Separator); !ok {
		return cfg, fmt.Errorf("invalid separator: %s", diag)
	}
	if ok, diag := validate.StartNumber(cfg.StartNumber); !ok {
		return cfg, fmt.Errorf("invalid start number: %s", diag)
	}

	return cfg, nil
}

// collectFiles gathers the batch from file arguments and optionally all
// regular files of a directory, then checks the list is workable. A batch
// with no accessible file at all is rejected here; individually missing or
// locked files stay in the batch and surface as invalid plan entries.
func collectFiles(args []string, dir string) ([]string, error) {
	files := make([]string, 0, len(args))
	files = append(files, args...)

	if dir != "" {
		listed, err := fileutil.ListFiles(dir)
		if err != nil {
			return nil, err
		}
		files = append(files, listed...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files selected: pass file arguments or --dir")
	}

	ok, diag, access := validate.FilesList(files)
	if !ok {
		return nil, fmt.Errorf("invalid file selection: %s", diag)
	}
	for _, fileErr := range access.Errors {
		logging.Logger.Warn("File in batch is not accessible",
			"file", fileErr.File, "error", fileErr.Error)
	}
	return files, nil
}
