package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"renum/internal/domain"
)

// HistoryCmd manages the rename history
type HistoryCmd struct {
	Clear HistoryClearCmd `cmd:"clear" help:"Discard all recorded sessions"`
	List  HistoryListCmd  `cmd:"list" help:"List rename sessions, newest first" default:"1"`
	Trace HistoryTraceCmd `cmd:"trace" help:"Trace a file's original name through the history"`
	Undo  HistoryUndoCmd  `cmd:"undo" help:"Undo a rename session"`
	View  HistoryViewCmd  `cmd:"view" help:"Show the renames of one session"`
}

// HistoryListCmd lists all sessions
type HistoryListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	sessions, err := cli.Container.HistoryService.Sessions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if h.Format == "json" {
		return printJSON(sessions)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIMESTAMP\tFILES")
	for _, session := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\n",
			session.ID,
			session.Timestamp.Format("2006-01-02 15:04:05"),
			session.Count)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	return nil
}

// HistoryViewCmd shows the records of a single session
type HistoryViewCmd struct {
	ID     string `arg:"" help:"Session id"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the view command
func (h *HistoryViewCmd) Run(cli *CLI) error {
	session, err := cli.Container.HistoryService.Session(context.Background(), h.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return fmt.Errorf("session %s not found", h.ID)
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if h.Format == "json" {
		return printJSON(session)
	}

	fmt.Printf("Session %s (%s, %d files):\n\n",
		session.ID, session.Timestamp.Format("2006-01-02 15:04:05"), session.Count)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OLD PATH\tNEW PATH")
	for _, record := range session.Files {
		fmt.Fprintf(w, "%s\t%s\n", record.OldPath, record.NewPath)
	}
	w.Flush()

	return nil
}

// HistoryTraceCmd traces a file's original name through chained renames
type HistoryTraceCmd struct {
	Path string `arg:"" help:"Current path of the file"`
}

// Run executes the trace command
func (h *HistoryTraceCmd) Run(cli *CLI) error {
	original, found, err := cli.Container.HistoryService.TraceOriginalName(context.Background(), h.Path)
	if err != nil {
		return fmt.Errorf("failed to trace history: %w", err)
	}
	if !found {
		fmt.Printf("No rename history found for %s\n", h.Path)
		return nil
	}

	fmt.Printf("Original name: %s\n", original)
	return nil
}

// HistoryUndoCmd reverses all renames of one session
type HistoryUndoCmd struct {
	ID    string `arg:"" help:"Session id to undo"`
	Quiet bool   `help:"Suppress per-file progress output" short:"q"`
}

// Run executes the undo command
func (h *HistoryUndoCmd) Run(cli *CLI) error {
	ctx := context.Background()

	session, err := cli.Container.HistoryService.Session(ctx, h.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return fmt.Errorf("session %s not found", h.ID)
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	progress := func(index, total int, filename string) {
		if !h.Quiet {
			fmt.Printf("[%d/%d] %s\n", index, total, filename)
		}
	}
	results := cli.Container.ExecutorService.Undo(ctx, *session, progress)
	summary := cli.Container.ExecutorService.Verify(results)

	printSummary(summary)
	return nil
}

// HistoryClearCmd discards all recorded sessions
type HistoryClearCmd struct {
	Yes bool `help:"Clear without confirmation" short:"y"`
}

// Run executes the clear command
func (h *HistoryClearCmd) Run(cli *CLI) error {
	if !h.Yes && !confirm("Discard all rename history?") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := cli.Container.HistoryService.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Println("History cleared.")
	return nil
}
