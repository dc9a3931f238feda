package organize

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"handlesort/internal/auditlog"
	"handlesort/internal/config"
	"handlesort/internal/executor"
	"handlesort/internal/handle"
	"handlesort/internal/logging"
	"handlesort/internal/plan"
	"handlesort/internal/preflight"
	"handlesort/internal/scan"
)

// Options carries the per-run settings after flag resolution. Zero values
// fall back to the loaded configuration.
type Options struct {
	Folder            string
	MinCount          int
	IncludeSingletons bool
	DryRun            bool
	Extensions        []string
	LogPath           string
	StrictStart       bool
	NoTrailing        bool
	Collision         string
}

// Run organizes a single flat directory. It never descends into
// subdirectories, so re-running against an already organized tree moves
// nothing. Fatal errors surface before the first move; per-file collisions do
// not abort the run.
func Run(ctx context.Context, cfg *config.Config, opts Options, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	runID := uuid.NewString()
	logger = logger.With(
		logging.String("component", "organize"),
		logging.String("run_id", runID),
	)

	folder, err := config.ExpandPath(opts.Folder)
	if err != nil {
		return nil, Wrap(ErrUsage, "resolve folder", "", err)
	}
	if err := preflight.CheckTargetDir(folder); err != nil {
		return nil, Wrap(ErrUsage, "check folder", "", err)
	}
	if !opts.DryRun {
		if err := preflight.CheckDirWritable(folder); err != nil {
			return nil, Wrap(ErrUsage, "check folder", "", err)
		}
	}

	minCount := opts.MinCount
	if minCount <= 0 {
		minCount = cfg.Organize.MinCount
	}
	if opts.IncludeSingletons {
		minCount = 1
	}
	extensions := config.NormalizeExtensions(opts.Extensions)
	if len(extensions) == 0 {
		extensions = cfg.Organize.Extensions
	}
	collision := opts.Collision
	if collision == "" {
		collision = cfg.Organize.Collision
	}

	detector := handle.NewDetector(handle.Options{
		StrictStart:   opts.StrictStart || cfg.Handles.StrictStart,
		AllowTrailing: cfg.Handles.AllowTrailing && !opts.NoTrailing,
		Prefixes:      reservedPrefixes(cfg),
	})

	files, err := scan.Listing(folder, extensions)
	if err != nil {
		return nil, Wrap(ErrTransient, "scan folder", "", err)
	}
	logger.Info("scanned folder",
		logging.String("folder", folder),
		logging.Int("files", len(files)),
	)

	grouping := plan.Classify(files, detector)
	for _, file := range grouping.Ungrouped {
		logger.Debug("no handle inferred", logging.String("file", file.Name))
	}

	entries := plan.Build(folder, grouping, minCount)

	var audit *auditlog.Writer
	if opts.LogPath != "" {
		logPath, err := config.ExpandPath(opts.LogPath)
		if err != nil {
			return nil, Wrap(ErrConfiguration, "resolve audit log path", "", err)
		}
		if err := preflight.CheckLogPath(logPath); err != nil {
			return nil, Wrap(ErrConfiguration, "check audit log", "audit logging must succeed before any file moves", err)
		}
		audit, err = auditlog.Open(logPath)
		if err != nil {
			return nil, Wrap(ErrConfiguration, "open audit log", "", err)
		}
		defer audit.Close()
	}

	if !opts.DryRun && len(entries) > 0 {
		release, err := executor.AcquireRunLock(folder)
		if err != nil {
			return nil, Wrap(ErrTransient, "lock folder", "", err)
		}
		defer release()
	}

	moves, execErr := executor.Execute(ctx, entries, executor.Options{
		DryRun:    opts.DryRun,
		Collision: collision,
	}, logger)

	if audit != nil {
		for _, move := range moves {
			if move.Skipped {
				continue
			}
			if err := audit.Record(move.Action, move.Entry.Handle, move.Entry.Source, move.Dest); err != nil {
				logger.Warn("audit log write failed", logging.Error(err))
				break
			}
		}
	}
	if execErr != nil {
		return nil, Wrap(ErrTransient, "execute moves", "", execErr)
	}

	report := buildReport(runID, folder, opts.DryRun, len(files), grouping, entries, moves, minCount)
	logger.Info("run complete",
		logging.Bool("dry_run", report.DryRun),
		logging.Int("scanned", report.Scanned),
		logging.Int("groups", len(report.Groups)),
		logging.Int("selected", report.Selected),
		logging.Int("moved", report.Moved),
		logging.Int("skipped", report.Skipped),
		logging.Int("ungrouped", report.Ungrouped),
	)
	return report, nil
}

func reservedPrefixes(cfg *config.Config) *handle.ReservedPrefixes {
	if len(cfg.Handles.CameraPrefixes) == 0 {
		return handle.DefaultReservedPrefixes()
	}
	return handle.NewReservedPrefixes(cfg.Handles.CameraPrefixes)
}

func buildReport(runID, folder string, dryRun bool, scanned int, grouping plan.Grouping, entries []plan.Entry, moves []executor.Move, minCount int) *Report {
	report := &Report{
		RunID:     runID,
		Folder:    folder,
		DryRun:    dryRun,
		Scanned:   scanned,
		Ungrouped: len(grouping.Ungrouped),
		Planned:   len(entries),
		Moves:     moves,
	}
	for _, group := range grouping.Groups {
		selected := len(group.Files) >= minCount
		if selected {
			report.Selected++
		}
		report.Groups = append(report.Groups, GroupSummary{
			Handle:   group.Handle,
			Count:    len(group.Files),
			Selected: selected,
		})
	}
	for _, move := range moves {
		if move.Skipped {
			report.Skipped++
		} else {
			report.Moved++
		}
	}
	return report
}
