// Package executor performs or simulates the planned file moves.
//
// Live runs create destination directories, hold an exclusive lock file in
// the target directory so concurrent invocations cannot interleave, and move
// files with a copy fallback for cross-device renames. Existing destination
// files are never overwritten: depending on the configured collision policy a
// conflicting move is either skipped and reported or retried under a suffixed
// name. Dry runs touch nothing on disk and report every move as simulated.
package executor
