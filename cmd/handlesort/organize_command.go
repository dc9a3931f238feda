package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"handlesort/internal/organize"
)

type organizeFlags struct {
	minCount          int
	includeSingletons bool
	dryRun            bool
	extensions        []string
	logPath           string
	strictStart       bool
	noTrailing        bool
	collision         string
}

func registerOrganizeFlags(cmd *cobra.Command, flags *organizeFlags) {
	cmd.Flags().IntVar(&flags.minCount, "min-count", 0, "Minimum files sharing a handle before a folder is created (default from config, 3)")
	cmd.Flags().BoolVar(&flags.includeSingletons, "include-singletons", false, "Also organize single-file handles (same as --min-count 1)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Preview actions without moving files")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "File extensions to scan (default from config: jpg,jpeg,png,webp,heic)")
	cmd.Flags().StringVar(&flags.logPath, "log", "", "CSV audit log path; parent directories are created")
	cmd.Flags().BoolVar(&flags.strictStart, "strict-start", false, "Only accept handles at the very start of the filename")
	cmd.Flags().BoolVar(&flags.noTrailing, "no-trailing", false, "Disable the trailing-handle fallback")
	cmd.Flags().StringVar(&flags.collision, "collision", "", "Destination collision policy: skip or rename (default from config, skip)")
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, folder string, flags *organizeFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger()
	if err != nil {
		return err
	}

	report, err := organize.Run(cmd.Context(), cfg, organize.Options{
		Folder:            folder,
		MinCount:          flags.minCount,
		IncludeSingletons: flags.includeSingletons,
		DryRun:            flags.dryRun,
		Extensions:        flags.extensions,
		LogPath:           flags.logPath,
		StrictStart:       flags.strictStart,
		NoTrailing:        flags.noTrailing,
		Collision:         flags.collision,
	}, logger)
	if err != nil {
		return err
	}

	renderReport(cmd.OutOrStdout(), report)
	return nil
}

func renderReport(out io.Writer, report *organize.Report) {
	if len(report.Groups) > 0 {
		rows := make([][]string, 0, len(report.Groups))
		for _, group := range report.Groups {
			status := "kept in place"
			if group.Selected {
				status = "organized"
				if report.DryRun {
					status = "would organize"
				}
			}
			rows = append(rows, []string{group.Handle, fmt.Sprintf("%d", group.Count), status})
		}
		fmt.Fprintln(out, renderTable([]string{"Handle", "Files", "Status"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}))
	}

	verb := "Moved"
	if report.DryRun {
		verb = "Would move"
	}
	fmt.Fprintf(out, "Scanned %d files, found %d handle groups (%d selected)\n", report.Scanned, len(report.Groups), report.Selected)
	fmt.Fprintf(out, "%s %d files", verb, report.Moved)
	if report.Skipped > 0 {
		fmt.Fprintf(out, ", skipped %d on collisions", report.Skipped)
	}
	if report.Ungrouped > 0 {
		fmt.Fprintf(out, ", left %d without a handle", report.Ungrouped)
	}
	fmt.Fprintln(out)
}
