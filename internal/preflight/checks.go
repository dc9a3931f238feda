package preflight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckTargetDir ensures path exists and is a directory.
func CheckTargetDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("folder not found: %s", path)
		}
		return fmt.Errorf("inspect folder %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}
	return nil
}

// CheckDirWritable ensures the current user can create and move entries
// inside path. Only live runs need this; dry runs read the listing and stop.
func CheckDirWritable(path string) error {
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("folder %s is not writable: %w", path, err)
	}
	return nil
}

// CheckLogPath ensures the audit-log location can be written: either the file
// itself is writable or its closest existing ancestor directory is.
func CheckLogPath(path string) error {
	if err := unix.Access(path, unix.W_OK); err == nil {
		return nil
	} else if !errors.Is(err, unix.ENOENT) {
		return fmt.Errorf("audit log %s is not writable: %w", path, err)
	}

	dir := filepath.Dir(path)
	for {
		if err := unix.Access(dir, unix.W_OK|unix.X_OK); err == nil {
			return nil
		} else if !errors.Is(err, unix.ENOENT) {
			return fmt.Errorf("audit log directory %s is not writable: %w", dir, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("no writable ancestor for audit log %s", path)
		}
		dir = parent
	}
}
