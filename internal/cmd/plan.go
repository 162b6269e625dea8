package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"renum/internal/domain"
)

// PlanCmd previews a rename plan without touching any file
type PlanCmd struct {
	Files []string `arg:"" optional:"" name:"file" help:"Files to rename"`
	Dir   string   `help:"Rename all regular files in a directory" type:"existingdir"`

	NamingFlags `embed:""`

	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the plan command
func (p *PlanCmd) Run(cli *CLI) error {
	files, err := collectFiles(p.Files, p.Dir)
	if err != nil {
		return err
	}

	cfg, err := p.buildConfig(cli.settings)
	if err != nil {
		return err
	}

	plan, err := cli.Container.PlannerService.Plan(context.Background(), files, cfg)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	if p.Format == "json" {
		return printJSON(plan)
	}
	return printPlanTable(plan)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printPlanTable(plan []domain.PlanEntry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tTARGET\tSTATUS\tDIAGNOSTIC")
	valid := 0
	for _, entry := range plan {
		status := "ok"
		if entry.Valid {
			valid++
		} else {
			status = "invalid"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.SourceName(),
			entry.TargetName(),
			status,
			entry.Diagnostic)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d files, %d ready, %d skipped/invalid\n", len(plan), valid, len(plan)-valid)
	return nil
}
