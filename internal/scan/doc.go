// Package scan lists the image files of a single flat directory.
//
// Only immediate entries are considered; subdirectories are never descended
// into, which is what makes repeated runs idempotent once files have been
// moved into per-handle folders. Entries are filtered by a case-insensitive
// extension allow-list and returned in name order so downstream planning is
// deterministic.
package scan
