package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	homeEnvVar   = "RENUM_HOME"
	appDirName   = ".renum"
	settingsFile = "settings.json"
	historyFile  = "history.json"
)

// GetHome returns the application home directory: $RENUM_HOME when set,
// otherwise ~/.renum
func GetHome() string {
	if home := os.Getenv(homeEnvVar); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(homeDir, appDirName)
}

// GetSettingsPath returns the settings.json path inside the app home
func GetSettingsPath() string {
	return filepath.Join(GetHome(), settingsFile)
}

// DefaultHistoryPath returns the default history store path inside the app
// home
func DefaultHistoryPath() string {
	return filepath.Join(GetHome(), historyFile)
}

// ExpandPath expands a leading ~ to the user home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
