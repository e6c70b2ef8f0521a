package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glabrego/redsaved/internal/app"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import file.jsonl [file.jsonl ...]",
		Short: "Add JSONL entries to the database, skipping ids already stored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.DBPath == "" {
				return fmt.Errorf("import needs a database: pass --db or set REDSAVED_DB_PATH")
			}
			logger, closeLog, err := newLogger(cfg.LogPath)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			repo, err := openRepository(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer repo.Close()

			read, inserted, err := app.NewService(repo, os.Stdin, logger).Import(ctx, args)
			if err != nil {
				return err
			}
			total, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d entries into %s (%d stored)\n", inserted, read, cfg.DBPath, total)
			return nil
		},
	}
}
