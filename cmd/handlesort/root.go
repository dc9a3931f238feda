package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	flags := &organizeFlags{}

	rootCmd := &cobra.Command{
		Use:   "handlesort <folder>",
		Short: "Organize a flat folder of images into subfolders by inferred owner handles",
		Long: `handlesort infers an Instagram-style owner handle from each image filename
in a single flat folder, groups files that share a handle, and moves each
qualifying group into a subfolder named after the handle. Handles keep their
exact casing and leading underscores or dots. The folder is never scanned
recursively, so a second run over an organized tree moves nothing.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runOrganize(cmd, ctx, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	registerOrganizeFlags(rootCmd, flags)

	rootCmd.AddCommand(newInferCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
