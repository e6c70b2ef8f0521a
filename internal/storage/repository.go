package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/redsaved/internal/saved"
)

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db, now: time.Now}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS entries (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT UNIQUE,
  data TEXT NOT NULL,
  imported_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ImportEntries appends entries in order, skipping ids that are already
// stored. Entries without an id are always appended. It returns how many
// rows were added.
func (r *Repository) ImportEntries(ctx context.Context, entries []saved.Entry) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO entries (id, data, imported_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO NOTHING
`)
	if err != nil {
		return 0, fmt.Errorf("prepare import statement: %w", err)
	}
	defer stmt.Close()

	now := r.now().UTC().Format(time.RFC3339Nano)
	inserted := 0
	for i, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return 0, fmt.Errorf("encode entry %d: %w", i, err)
		}
		var id any
		if entry.ID != "" {
			id = entry.ID
		}
		res, err := stmt.ExecContext(ctx, id, string(data), now)
		if err != nil {
			return 0, fmt.Errorf("import entry %q: %w", entry.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("import entry %q: %w", entry.ID, err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return inserted, nil
}

// ListEntries returns every stored entry in import order.
func (r *Repository) ListEntries(ctx context.Context) ([]saved.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT seq, data
FROM entries
ORDER BY seq ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]saved.Entry, 0, 64)
	for rows.Next() {
		var (
			seq  int64
			data string
		)
		if err := rows.Scan(&seq, &data); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		var entry saved.Entry
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			return nil, fmt.Errorf("decode entry %d: %w", seq, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return entries, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}
