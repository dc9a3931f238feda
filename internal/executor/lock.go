package executor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".handlesort.lock"

// AcquireRunLock takes an exclusive lock inside the target directory and
// returns a release function. A held lock means another run is already
// organizing the same directory.
func AcquireRunLock(dir string) (func(), error) {
	lockPath := filepath.Join(dir, lockFileName)
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another handlesort run is active in %s", dir)
	}

	release := func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}
	return release, nil
}
