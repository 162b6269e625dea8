package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"renum/internal/domain"
	"renum/internal/theme"
)

// ApplyCmd plans and executes a batch rename in one pass
type ApplyCmd struct {
	Files []string `arg:"" optional:"" name:"file" help:"Files to rename"`
	Dir   string   `help:"Rename all regular files in a directory" type:"existingdir"`

	NamingFlags `embed:""`

	Yes   bool `help:"Apply without confirmation" short:"y"`
	Quiet bool `help:"Suppress per-file progress output" short:"q"`
}

// Run executes the apply command
func (a *ApplyCmd) Run(cli *CLI) error {
	files, err := collectFiles(a.Files, a.Dir)
	if err != nil {
		return err
	}

	cfg, err := a.buildConfig(cli.settings)
	if err != nil {
		return err
	}
	if cfg.ConflictStrategy == domain.ConflictPrompt {
		return fmt.Errorf("the prompt strategy needs the interactive mode; run 'renum' without a subcommand")
	}

	ctx := context.Background()
	plan, err := cli.Container.PlannerService.Plan(ctx, files, cfg)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	if !a.Yes {
		if err := printPlanTable(plan); err != nil {
			return err
		}
		if !confirm("Proceed with rename?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	progress := func(index, total int, filename string) {
		if !a.Quiet {
			fmt.Printf("[%d/%d] %s\n", index, total, filename)
		}
	}
	results := cli.Container.ExecutorService.Execute(ctx, plan, progress)
	summary := cli.Container.ExecutorService.Verify(results)

	printSummary(summary)
	return nil
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func printSummary(summary domain.Summary) {
	if summary.Failed == 0 {
		fmt.Println(theme.SuccessStyle.Render(
			fmt.Sprintf("Renamed %d/%d files (%.0f%%)",
				summary.Successful, summary.Total, summary.SuccessRate)))
		return
	}

	fmt.Printf("Renamed %d/%d files (%.0f%%), %d failed, %d skipped\n",
		summary.Successful, summary.Total, summary.SuccessRate,
		summary.Failed, summary.Skipped)
	for _, failure := range summary.Failures {
		fmt.Println(theme.ErrorStyle.Render(
			fmt.Sprintf("  %s: %s", failure.OldPath, failure.Error)))
	}
}
