package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"renum/internal/config"
	"renum/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	HistoryFile string           `help:"Path to the history store (overrides settings)"`

	Run     RunCmd     `cmd:"" help:"Rename files interactively (default)" default:"1"`
	Plan    PlanCmd    `cmd:"plan" help:"Preview a rename plan without touching any file"`
	Apply   ApplyCmd   `cmd:"apply" help:"Plan and execute a batch rename"`
	History HistoryCmd `cmd:"history" help:"Browse, trace, undo, or clear rename history"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 100 {
			if _, hasEnv := os.LookupEnv("RENUM_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("RENUM_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container after logging is initialized so the repository can
	// log load warnings
	container, err := NewContainer(c.historyPath())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// historyPath resolves the history store location: flag > env > settings >
// default under the app home
func (c *CLI) historyPath() string {
	if c.HistoryFile != "" {
		return config.ExpandPath(c.HistoryFile)
	}
	if env := os.Getenv("RENUM_HISTORY_FILE"); env != "" {
		return config.ExpandPath(env)
	}
	if c.settings != nil {
		return c.settings.HistoryPathOrDefault()
	}
	return config.DefaultHistoryPath()
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
