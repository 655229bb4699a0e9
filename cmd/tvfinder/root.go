package main

import (
	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCommand() *cobra.Command {
	var baseURLFlag string

	ctx := newCommandContext(&baseURLFlag)

	rootCmd := &cobra.Command{
		Use:           "tvfinder",
		Short:         "Search TV shows and list their episodes",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "TVMaze API root (overrides tvmaze_base_url)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newEpisodesCommand(ctx))

	return rootCmd
}
