package organize

import "handlesort/internal/executor"

// GroupSummary describes one inferred handle group.
type GroupSummary struct {
	Handle string
	Count  int
	// Selected reports whether the group met the minimum count and produced
	// plan entries.
	Selected bool
}

// Report is the outcome of a run, consumed by the CLI for rendering.
type Report struct {
	RunID     string
	Folder    string
	DryRun    bool
	Scanned   int
	Ungrouped int
	Groups    []GroupSummary
	Selected  int
	Planned   int
	Moved     int
	Skipped   int
	Moves     []executor.Move
}
