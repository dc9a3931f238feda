package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"handlesort/internal/handle"
)

func newInferCommand(ctx *commandContext) *cobra.Command {
	var strictStart bool
	var noTrailing bool

	cmd := &cobra.Command{
		Use:   "infer <filename>...",
		Short: "Show which handle would be inferred from filenames",
		Long: `infer runs the handle inference chain against each argument and prints the
verdict without touching the filesystem. Arguments may be bare stems or full
filenames; a final extension is stripped first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			prefixes := handle.DefaultReservedPrefixes()
			if len(cfg.Handles.CameraPrefixes) > 0 {
				prefixes = handle.NewReservedPrefixes(cfg.Handles.CameraPrefixes)
			}
			detector := handle.NewDetector(handle.Options{
				StrictStart:   strictStart || cfg.Handles.StrictStart,
				AllowTrailing: cfg.Handles.AllowTrailing && !noTrailing,
				Prefixes:      prefixes,
			})

			out := cmd.OutOrStdout()
			for _, arg := range args {
				stem := strings.TrimSuffix(arg, filepath.Ext(arg))
				result, ok := detector.Infer(stem)
				if !ok {
					fmt.Fprintf(out, "%s: no handle\n", arg)
					continue
				}
				fmt.Fprintf(out, "%s: %q (%s)\n", arg, result.Handle, result.Strategy)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strictStart, "strict-start", false, "Only accept handles at the very start of the filename")
	cmd.Flags().BoolVar(&noTrailing, "no-trailing", false, "Disable the trailing-handle fallback")
	return cmd
}
