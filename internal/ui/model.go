// Package ui implements the interactive front-end: a Bubble Tea program
// that walks the user from naming policy to plan preview to execution and
// results. The engine itself stays in internal/services; the UI is just a
// caller that supplies a file list and a configuration and renders what
// comes back.
package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"renum/internal/domain"
	"renum/internal/services"
	"renum/internal/theme"
	"renum/internal/validate"
)

type phase int

const (
	phaseConfig phase = iota
	phasePlanning
	phasePrompt
	phasePreview
	phaseExecuting
	phaseResults
)

// How many failures to list on the results screen
const maxFailuresShown = 10

// Model is the Bubble Tea model for the interactive renamer
type Model struct {
	phase phase
	keys  KeyMap

	files []string
	cfg   domain.RenameConfig

	planner  *services.PlannerService
	executor *services.ExecutorService

	// Config form scratch values; huh binds to strings
	form             *huh.Form
	baseName         string
	separator        string
	startNumber      string
	sortMethod       string
	conflictStrategy string
	padding          string

	spin    spinner.Model
	preview viewport.Model
	plan    []domain.PlanEntry

	// Prompt-strategy resolution queue: plan indexes still awaiting a
	// per-conflict decision
	promptQueue  []int
	promptChoice string
	promptForm   *huh.Form

	progressCh chan progressMsg
	current    progressMsg
	results    []domain.RenameResult
	summary    domain.Summary

	width  int
	height int
	err    error
}

// NewModel creates the interactive renamer model. cfg provides the initial
// form values (the caller's settings defaults); the form is where the user
// adjusts them.
func NewModel(files []string, cfg domain.RenameConfig, planner *services.PlannerService, executor *services.ExecutorService) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.NormalStyle.Foreground(theme.ColorSpinner)

	m := &Model{
		phase:            phaseConfig,
		keys:             DefaultKeyMap(),
		files:            files,
		cfg:              cfg,
		planner:          planner,
		executor:         executor,
		baseName:         cfg.BaseName,
		separator:        cfg.Separator,
		startNumber:      strconv.Itoa(cfg.StartNumber),
		sortMethod:       string(cfg.SortMethod),
		conflictStrategy: string(cfg.ConflictStrategy),
		padding:          string(cfg.Padding),
		spin:             sp,
		preview:          viewport.New(80, 20),
	}
	m.form = m.newConfigForm()
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// newConfigForm builds the naming-policy form with live validation
func (m *Model) newConfigForm() *huh.Form {
	sortOptions := make([]huh.Option[string], 0, len(domain.SortMethods))
	for _, s := range domain.SortMethods {
		sortOptions = append(sortOptions, huh.NewOption(s.Label, string(s.Method)))
	}
	conflictOptions := make([]huh.Option[string], 0, len(domain.ConflictStrategies))
	for _, c := range domain.ConflictStrategies {
		conflictOptions = append(conflictOptions, huh.NewOption(c.Label, string(c.Strategy)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Base name").
				Description("New filenames start with this").
				Value(&m.baseName).
				Validate(func(s string) error {
					if ok, diag := validate.BaseName(s); !ok {
						return fmt.Errorf("%s", diag)
					}
					return nil
				}),
			huh.NewInput().
				Title("Separator").
				Description("Between base name and number (may be empty)").
				Value(&m.separator).
				Validate(func(s string) error {
					if ok, diag := validate.Separator(s); !ok {
						return fmt.Errorf("%s", diag)
					}
					return nil
				}),
			huh.NewInput().
				Title("Start number").
				Value(&m.startNumber).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("starting number must be a valid integer")
					}
					if ok, diag := validate.StartNumber(n); !ok {
						return fmt.Errorf("%s", diag)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Sort by").
				Options(sortOptions...).
				Value(&m.sortMethod),
			huh.NewSelect[string]().
				Title("On conflict").
				Options(conflictOptions...).
				Value(&m.conflictStrategy),
			huh.NewSelect[string]().
				Title("Number padding").
				Options(
					huh.NewOption("Auto-detect", "auto"),
					huh.NewOption("No Padding (1, 2, 3...)", "none"),
					huh.NewOption("2 Digits (01, 02...)", "2"),
					huh.NewOption("3 Digits (001, 002...)", "3"),
					huh.NewOption("4 Digits (0001, 0002...)", "4"),
				).
				Value(&m.padding),
		),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = msg.Width - 4
		if msg.Height > 10 {
			m.preview.Height = msg.Height - 8
		}
		return m, nil

	case planFailedMsg:
		m.err = msg.Err
		m.phase = phaseConfig
		m.form = m.newConfigForm()
		return m, m.form.Init()

	case planReadyMsg:
		m.plan = msg.Plan
		if m.cfg.ConflictStrategy == domain.ConflictPrompt {
			m.promptQueue = m.planner.Conflicts(m.plan)
			if len(m.promptQueue) > 0 {
				return m.nextPrompt()
			}
		}
		return m.enterPreview()

	case progressMsg:
		m.current = msg
		return m, m.waitForProgress()

	case execDoneMsg:
		m.results = msg.Results
		m.summary = m.executor.Verify(msg.Results)
		m.phase = phaseResults
		return m, nil

	case spinner.TickMsg:
		if m.phase == phasePlanning || m.phase == phaseExecuting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.phase {
	case phaseConfig:
		return m.updateConfig(msg)
	case phasePrompt:
		return m.updatePrompt(msg)
	case phasePreview:
		return m.updatePreview(msg)
	case phaseResults:
		return m.updateResults(msg)
	}
	return m, nil
}

func (m *Model) updateConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.err = nil
		start, _ := strconv.Atoi(strings.TrimSpace(m.startNumber))
		m.cfg = domain.RenameConfig{
			BaseName:         m.baseName,
			StartNumber:      start,
			Separator:        m.separator,
			SortMethod:       domain.ParseSortMethod(m.sortMethod),
			ConflictStrategy: domain.ConflictStrategy(m.conflictStrategy),
			Padding:          domain.PaddingMode(m.padding),
		}
		m.phase = phasePlanning
		return m, tea.Batch(m.spin.Tick, m.generatePlan())
	}

	return m, cmd
}

func (m *Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	form, cmd := m.promptForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.promptForm = f
	}

	if m.promptForm.State == huh.StateCompleted {
		i := m.promptQueue[0]
		m.promptQueue = m.promptQueue[1:]

		claimed := make(map[string]bool, len(m.plan))
		for j, entry := range m.plan {
			if j != i {
				claimed[entry.Target] = true
			}
		}
		m.plan[i] = m.planner.ResolveEntry(
			m.plan[i],
			domain.ConflictStrategy(m.promptChoice),
			m.cfg.StartNumber+i,
			len(m.plan),
			m.cfg,
			claimed,
		)

		if len(m.promptQueue) > 0 {
			return m.nextPrompt()
		}
		return m.enterPreview()
	}

	return m, cmd
}

func (m *Model) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Back):
			m.phase = phaseConfig
			m.form = m.newConfigForm()
			return m, m.form.Init()
		case key.Matches(keyMsg, m.keys.Apply):
			m.phase = phaseExecuting
			return m, tea.Batch(m.spin.Tick, m.startExecution())
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.Apply):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Back):
			// A new cycle against the now-renamed files
			m.phase = phaseConfig
			m.form = m.newConfigForm()
			return m, m.form.Init()
		}
	}
	return m, nil
}

// nextPrompt builds the resolution form for the next conflicted entry
func (m *Model) nextPrompt() (tea.Model, tea.Cmd) {
	entry := m.plan[m.promptQueue[0]]
	m.promptChoice = string(domain.ConflictAutoIncrement)
	m.promptForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Conflict: %s", entry.TargetName())).
				Description(fmt.Sprintf("Target for %s already exists. Choose how to resolve.", entry.SourceName())).
				Options(
					huh.NewOption("Auto-increment number", string(domain.ConflictAutoIncrement)),
					huh.NewOption("Add suffix (_copy)", string(domain.ConflictAddSuffix)),
					huh.NewOption("Skip this file", string(domain.ConflictSkip)),
				).
				Value(&m.promptChoice),
		),
	)
	m.phase = phasePrompt
	return m, m.promptForm.Init()
}

func (m *Model) enterPreview() (tea.Model, tea.Cmd) {
	m.phase = phasePreview
	m.preview.SetContent(m.renderPlan())
	m.preview.GotoTop()
	return m, nil
}

// generatePlan runs the planner off the UI loop
func (m *Model) generatePlan() tea.Cmd {
	files := m.files
	cfg := m.cfg
	return func() tea.Msg {
		plan, err := m.planner.Plan(context.Background(), files, cfg)
		if err != nil {
			return planFailedMsg{Err: err}
		}
		return planReadyMsg{Plan: plan}
	}
}

// startExecution runs the executor in the background, streaming per-file
// progress through a buffered channel so the engine never blocks on the UI
func (m *Model) startExecution() tea.Cmd {
	m.progressCh = make(chan progressMsg, len(m.plan)+1)
	plan := m.plan

	run := func() tea.Msg {
		results := m.executor.Execute(context.Background(), plan, func(index, total int, filename string) {
			m.progressCh <- progressMsg{Index: index, Total: total, Filename: filename}
		})
		close(m.progressCh)
		return execDoneMsg{Results: results}
	}

	return tea.Batch(run, m.waitForProgress())
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if p, ok := <-m.progressCh; ok {
			return p
		}
		return nil
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("renum"))
	b.WriteString("\n")

	switch m.phase {
	case phaseConfig:
		if m.err != nil {
			b.WriteString(theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(theme.SubtleStyle.Render(fmt.Sprintf("%d files selected", len(m.files))))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())

	case phasePlanning:
		b.WriteString(fmt.Sprintf("\n %s Generating plan...\n", m.spin.View()))

	case phasePrompt:
		b.WriteString(theme.SubtleStyle.Render(fmt.Sprintf("%d conflicts to resolve", len(m.promptQueue))))
		b.WriteString("\n\n")
		b.WriteString(m.promptForm.View())

	case phasePreview:
		valid := 0
		for _, e := range m.plan {
			if e.Valid {
				valid++
			}
		}
		b.WriteString(theme.SubtleStyle.Render(
			fmt.Sprintf("Preview: %d files, %d ready, %d skipped/invalid", len(m.plan), valid, len(m.plan)-valid)))
		b.WriteString("\n\n")
		b.WriteString(m.preview.View())
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render("enter apply · esc back · q quit · ↑/↓ scroll"))

	case phaseExecuting:
		b.WriteString(fmt.Sprintf("\n %s Renaming %d/%d: %s\n",
			m.spin.View(), m.current.Index, m.current.Total, m.current.Filename))

	case phaseResults:
		b.WriteString(m.renderResults())
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render("esc new batch · q quit"))
	}

	return b.String()
}

func (m *Model) renderPlan() string {
	var b strings.Builder
	for _, entry := range m.plan {
		line := fmt.Sprintf("%s → %s", entry.SourceName(), entry.TargetName())
		if entry.Valid {
			b.WriteString(theme.SafeStyle.Render("  ✓ " + line))
		} else {
			b.WriteString(theme.InvalidStyle.Render("  ✗ " + line))
			if entry.Diagnostic != "" {
				b.WriteString(theme.MutedStyle.Render("  (" + entry.Diagnostic + ")"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderResults() string {
	var b strings.Builder

	if m.summary.Failed == 0 {
		b.WriteString(theme.SuccessStyle.Render(
			fmt.Sprintf("All %d files renamed successfully", m.summary.Successful)))
	} else {
		b.WriteString(theme.NormalStyle.Render(fmt.Sprintf(
			"%d/%d renamed (%.0f%%), %d failed, %d skipped",
			m.summary.Successful, m.summary.Total, m.summary.SuccessRate,
			m.summary.Failed, m.summary.Skipped)))
	}
	b.WriteString("\n")

	shown := 0
	for _, failure := range m.summary.Failures {
		if shown >= maxFailuresShown {
			b.WriteString(theme.MutedStyle.Render(
				fmt.Sprintf("  ... and %d more\n", len(m.summary.Failures)-shown)))
			break
		}
		b.WriteString(theme.InvalidStyle.Render(
			fmt.Sprintf("  ✗ %s: %s", filepath.Base(failure.OldPath), failure.Error)))
		b.WriteString("\n")
		shown++
	}

	return b.String()
}
