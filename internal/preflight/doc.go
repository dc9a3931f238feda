// Package preflight verifies filesystem prerequisites before any file is
// touched.
//
// Checks run once at the start of a live run so problems surface as a single
// fatal error instead of a half-moved directory.
package preflight
