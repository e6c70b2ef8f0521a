package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/glabrego/redsaved/internal/saved"
)

const stdinName = "-"

var ErrNoRepository = errors.New("no database configured")

type Repository interface {
	ImportEntries(ctx context.Context, entries []saved.Entry) (int, error)
	ListEntries(ctx context.Context) ([]saved.Entry, error)
}

// Service loads saved entries from JSONL sources or the database.
type Service struct {
	repo   Repository
	stdin  io.Reader
	open   func(string) (io.ReadCloser, error)
	logger *slog.Logger
}

func NewService(repo Repository, stdin io.Reader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		repo:   repo,
		stdin:  stdin,
		open:   func(path string) (io.ReadCloser, error) { return os.Open(path) },
		logger: logger,
	}
}

// LoadFiles reads every path in order and concatenates the entries. "-"
// reads standard input.
func (s *Service) LoadFiles(ctx context.Context, paths []string) ([]saved.Entry, error) {
	var entries []saved.Entry
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		loaded, err := s.readFile(path)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("loaded entries", "source", path, "count", len(loaded))
		entries = append(entries, loaded...)
	}
	return entries, nil
}

func (s *Service) LoadStored(ctx context.Context) ([]saved.Entry, error) {
	if s.repo == nil {
		return nil, ErrNoRepository
	}
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries from database: %w", err)
	}
	s.logger.Debug("loaded entries", "source", "database", "count", len(entries))
	return entries, nil
}

// Import reads paths and stores their entries, returning how many were read
// and how many were new.
func (s *Service) Import(ctx context.Context, paths []string) (int, int, error) {
	if s.repo == nil {
		return 0, 0, ErrNoRepository
	}
	entries, err := s.LoadFiles(ctx, paths)
	if err != nil {
		return 0, 0, err
	}
	inserted, err := s.repo.ImportEntries(ctx, entries)
	if err != nil {
		return 0, 0, fmt.Errorf("save entries to database: %w", err)
	}
	s.logger.Info("imported entries", "read", len(entries), "inserted", inserted)
	return len(entries), inserted, nil
}

// Merge writes the records of paths to w, keeping the first record seen for
// each id.
func (s *Service) Merge(w io.Writer, paths []string) (int, error) {
	sources := make([]saved.NamedReader, 0, len(paths))
	for _, path := range paths {
		if path == stdinName {
			sources = append(sources, saved.NamedReader{Name: "stdin", Reader: s.stdin})
			continue
		}
		f, err := s.open(path)
		if err != nil {
			return 0, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		sources = append(sources, saved.NamedReader{Name: path, Reader: f})
	}
	n, err := saved.MergeJSONL(w, sources)
	if err != nil {
		return n, fmt.Errorf("merge entries: %w", err)
	}
	s.logger.Info("merged entries", "sources", len(paths), "written", n)
	return n, nil
}

func (s *Service) readFile(path string) ([]saved.Entry, error) {
	if path == stdinName {
		if s.stdin == nil {
			return nil, fmt.Errorf("no standard input available")
		}
		return saved.ReadJSONL(s.stdin, "stdin")
	}
	f, err := s.open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return saved.ReadJSONL(f, path)
}
