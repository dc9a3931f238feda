package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"handlesort/internal/logging"
	"handlesort/internal/plan"
)

// Collision policies for occupied destination paths.
const (
	CollisionSkip   = "skip"
	CollisionRename = "rename"
)

// Actions recorded for executed and simulated moves.
const (
	ActionMoved  = "MOVED"
	ActionDryRun = "DRY-RUN-MOVE"
)

// Options controls move execution.
type Options struct {
	DryRun    bool
	Collision string
}

// Move is the outcome of one plan entry.
type Move struct {
	Entry plan.Entry
	// Action is ActionMoved or ActionDryRun; empty when the entry was skipped.
	Action string
	// Dest is the path the file actually landed at, which differs from the
	// planned destination when the rename collision policy kicked in.
	Dest string
	// Skipped marks entries left in place because of a collision.
	Skipped bool
	Reason  string
}

// Execute applies the plan sequentially. Collisions are per-file recoverable:
// the entry is skipped (or renamed, per policy) and the run continues. The
// returned slice holds one Move per entry in plan order.
func Execute(ctx context.Context, entries []plan.Entry, opts Options, logger *slog.Logger) ([]Move, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	collision := strings.ToLower(strings.TrimSpace(opts.Collision))
	if collision == "" {
		collision = CollisionSkip
	}

	moves := make([]Move, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return moves, err
		}

		if opts.DryRun {
			logger.Info("would move file",
				logging.String("source", entry.Source),
				logging.String("dest", entry.DestPath),
				logging.String("handle", entry.Handle),
			)
			moves = append(moves, Move{Entry: entry, Action: ActionDryRun, Dest: entry.DestPath})
			continue
		}

		move, err := executeOne(entry, collision, logger)
		if err != nil {
			return moves, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

func executeOne(entry plan.Entry, collision string, logger *slog.Logger) (Move, error) {
	if err := os.MkdirAll(entry.DestDir, 0o755); err != nil {
		return Move{}, fmt.Errorf("create directory %q: %w", entry.DestDir, err)
	}

	target := entry.DestPath
	if _, err := os.Stat(target); err == nil {
		switch collision {
		case CollisionRename:
			renamed, err := nextAvailablePath(target)
			if err != nil {
				return Move{}, err
			}
			target = renamed
		default:
			logger.Warn("destination exists, leaving file in place",
				logging.String("source", entry.Source),
				logging.String("dest", target),
			)
			return Move{Entry: entry, Skipped: true, Reason: "destination exists"}, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Move{}, fmt.Errorf("inspect destination %q: %w", target, err)
	}

	if err := moveFile(entry.Source, target); err != nil {
		return Move{}, fmt.Errorf("move %q: %w", entry.Source, err)
	}

	logger.Info("moved file",
		logging.String("source", entry.Source),
		logging.String("dest", target),
		logging.String("handle", entry.Handle),
	)
	return Move{Entry: entry, Action: ActionMoved, Dest: target}, nil
}

// nextAvailablePath appends __1, __2, ... before the extension until a free
// name is found.
func nextAvailablePath(path string) (string, error) {
	const maxAttempts = 10000
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate := fmt.Sprintf("%s__%d%s", stem, attempt, ext)
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return candidate, nil
			}
			return "", err
		}
	}
	return "", fmt.Errorf("exhausted rename slots for %s", path)
}

// moveFile renames src to dst, falling back to copy+remove when the rename
// crosses filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := copyFile(src, dst); copyErr != nil {
			return copyErr
		}
		return os.Remove(src)
	}
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
