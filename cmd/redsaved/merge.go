package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glabrego/redsaved/internal/app"
)

func newMergeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "merge file.jsonl [file.jsonl ...]",
		Short: "Merge JSONL files to stdout, keeping the first record per id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg.LogPath)
			if err != nil {
				return err
			}
			defer closeLog()

			n, err := app.NewService(nil, os.Stdin, logger).Merge(cmd.OutOrStdout(), args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "merged %d entries\n", n)
			return nil
		},
	}
}
