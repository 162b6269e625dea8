package ui

import "renum/internal/domain"

// planReadyMsg carries a freshly generated plan into the preview phase
type planReadyMsg struct {
	Plan []domain.PlanEntry
}

// planFailedMsg reports that plan generation itself failed
type planFailedMsg struct {
	Err error
}

// progressMsg reports per-file execution progress
type progressMsg struct {
	Index    int
	Total    int
	Filename string
}

// execDoneMsg carries the results once the whole batch finished
type execDoneMsg struct {
	Results []domain.RenameResult
}
