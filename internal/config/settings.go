package config

import (
	"encoding/json"
	"fmt"
	"os"

	"renum/internal/domain"
)

// Settings represents the structure of $RENUM_HOME/settings.json. All
// fields are optional; absent fields fall back to the built-in defaults.
// Separator and StartNumber are pointers because the empty string and zero
// are meaningful values.
type Settings struct {
	BaseName         string  `json:"base_name,omitempty"`
	ConflictStrategy string  `json:"conflict_strategy,omitempty"`
	Debug            *bool   `json:"debug,omitempty"`
	HistoryPath      string  `json:"history_path,omitempty"`
	MaxLogFiles      *int    `json:"max_log_files,omitempty"`
	Padding          string  `json:"padding,omitempty"`
	Separator        *string `json:"separator,omitempty"`
	SortMethod       string  `json:"sort_method,omitempty"`
	StartNumber      *int    `json:"start_number,omitempty"`
}

// LoadSettings loads settings from $RENUM_HOME/settings.json.
// A missing file is not an error; defaults apply.
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.HistoryPath != "" {
		settings.HistoryPath = ExpandPath(settings.HistoryPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $RENUM_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(GetHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// RenameConfig builds a naming policy from the settings, overlaying the
// built-in defaults with whatever the user persisted
func (s *Settings) RenameConfig() domain.RenameConfig {
	cfg := domain.DefaultRenameConfig()

	if s.BaseName != "" {
		cfg.BaseName = s.BaseName
	}
	if s.Separator != nil {
		cfg.Separator = *s.Separator
	}
	if s.StartNumber != nil {
		cfg.StartNumber = *s.StartNumber
	}
	if s.SortMethod != "" {
		cfg.SortMethod = domain.ParseSortMethod(s.SortMethod)
	}
	if s.ConflictStrategy != "" {
		cfg.ConflictStrategy = domain.ConflictStrategy(s.ConflictStrategy)
	}
	if s.Padding != "" {
		cfg.Padding = domain.PaddingMode(s.Padding)
	}

	return cfg
}

// HistoryPathOrDefault returns the configured history store location,
// falling back to the default inside the app home
func (s *Settings) HistoryPathOrDefault() string {
	if s.HistoryPath != "" {
		return s.HistoryPath
	}
	return DefaultHistoryPath()
}
