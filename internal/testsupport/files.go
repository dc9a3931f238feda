// Package testsupport provides shared fixtures for handlesort tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// TouchFiles creates empty files with the given names inside dir.
func TouchFiles(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// ListNames returns the sorted base names of the immediate entries of dir.
func ListNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
