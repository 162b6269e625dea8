package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"renum/internal/config"
	"renum/internal/logging"
	"renum/internal/ui"
)

// RunCmd starts the interactive renamer
type RunCmd struct {
	Files []string `arg:"" optional:"" name:"file" help:"Files to rename"`
	Dir   string   `help:"Rename all regular files in a directory" type:"existingdir"`
}

// Run executes the interactive renamer
func (r *RunCmd) Run(cli *CLI) error {
	files, err := collectFiles(r.Files, r.Dir)
	if err != nil {
		return err
	}

	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	cfg := settings.RenameConfig()

	logging.Logger.Info("Starting interactive renamer", "files", len(files))
	p := tea.NewProgram(
		ui.NewModel(files, cfg, cli.Container.PlannerService, cli.Container.ExecutorService),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Interactive program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Interactive program exited normally")
	return nil
}
