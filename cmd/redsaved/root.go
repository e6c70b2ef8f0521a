package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/glabrego/redsaved/internal/app"
	"github.com/glabrego/redsaved/internal/config"
	"github.com/glabrego/redsaved/internal/dispatch"
	"github.com/glabrego/redsaved/internal/saved"
	"github.com/glabrego/redsaved/internal/storage"
	"github.com/glabrego/redsaved/internal/store"
	"github.com/glabrego/redsaved/internal/tui"
)

type rootOptions struct {
	configPath string
	logPath    string
	dbPath     string
	utc        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "redsaved [file.jsonl ...]",
		Short: "Browse saved Reddit posts and comments in the terminal",
		Long: `redsaved pages through saved entries, one JSON object per line, read
from the given files, from standard input ("-" or a pipe), or from the
database given with --db. Keys bound in the keybinding file run external
commands with the selected entry.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runView(cmd.Context(), cfg, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "keybinding file (default: discovered, env REDSAVED_CONFIG)")
	flags.StringVar(&opts.logPath, "log-file", "", "write diagnostics to this file (env REDSAVED_LOG_FILE)")
	flags.StringVar(&opts.dbPath, "db", "", "SQLite database of imported entries (env REDSAVED_DB_PATH)")
	cmd.Flags().BoolVar(&opts.utc, "utc", false, "show timestamps in UTC (env REDSAVED_UTC)")

	cmd.AddCommand(newMergeCmd(opts))
	cmd.AddCommand(newImportCmd(opts))
	return cmd
}

// resolve layers explicitly set flags over the environment.
func (o *rootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("config") {
		cfg.KeybindingsPath = o.configPath
	}
	if flags.Changed("log-file") {
		cfg.LogPath = o.logPath
	}
	if flags.Changed("db") {
		cfg.DBPath = o.dbPath
	}
	if flags.Changed("utc") {
		cfg.UTC = o.utc
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

func runView(ctx context.Context, cfg config.Config, args []string) error {
	logger, closeLog, err := newLogger(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	keybindings, err := config.LoadKeybindings(cfg.KeybindingsPath)
	if err != nil {
		return err
	}
	dispatcher, err := dispatch.New(keybindings.Bindings)
	if err != nil {
		return fmt.Errorf("keybindings %s: %w", keybindings.Source, err)
	}
	logger.Info("keybindings loaded", "source", keybindings.Source, "actions", dispatcher.Len())

	stdinPiped := !isTerminal(os.Stdin)
	if len(args) == 0 && cfg.DBPath == "" {
		if !stdinPiped {
			return fmt.Errorf("no input: pass JSONL files, pipe entries on stdin or use --db")
		}
		args = []string{"-"}
	}

	entries, err := loadEntries(ctx, cfg, args, logger)
	if err != nil {
		return err
	}
	logger.Info("entries loaded", "count", len(entries))

	model := tui.NewModel(store.New(entries), dispatcher, tui.Options{UTC: cfg.UTC, Logger: logger})
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if stdinPiped {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func loadEntries(ctx context.Context, cfg config.Config, args []string, logger *slog.Logger) ([]saved.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if len(args) > 0 {
		return app.NewService(nil, os.Stdin, logger).LoadFiles(ctx, args)
	}

	repo, err := openRepository(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer repo.Close()
	return app.NewService(repo, nil, logger).LoadStored(ctx)
}

func openRepository(ctx context.Context, path string) (*storage.Repository, error) {
	repo, err := storage.NewRepository(path)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	if err := repo.Init(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("storage schema error: %w", err)
	}
	return repo, nil
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
