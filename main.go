package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"renum/internal/cmd"
	"renum/internal/config"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123"
var (
	Commit  = "unknown"
	Date    = "unknown"
	Version = "dev"
)

// Tagline is the application's tagline used in help text
const Tagline = "Batch file renaming with conflict-safe plans and undoable history"

func versionInfo() string {
	return fmt.Sprintf("renum %s (commit: %s, built: %s)", Version, Commit, Date)
}

func main() {
	// Load settings from ~/.renum/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("renum"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
