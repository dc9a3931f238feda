// Package organize wires the scan, inference, planning, execution, and audit
// stages into a single run.
//
// Run is the one entry point the CLI calls: it validates the target folder,
// classifies its files by inferred handle, plans moves for groups that meet
// the minimum count, and executes or simulates those moves under a run lock.
// Every run gets a fresh ID that tags its log lines, and the returned Report
// carries the counts and per-group summaries the CLI renders.
package organize
