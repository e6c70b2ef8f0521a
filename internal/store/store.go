package store

import "github.com/glabrego/redsaved/internal/saved"

// Store holds the loaded entries in input order. It is never mutated after
// construction.
type Store struct {
	entries []saved.Entry
}

// New keeps entries exactly as loaded: same order, duplicates included.
func New(entries []saved.Entry) *Store {
	return &Store{entries: append([]saved.Entry(nil), entries...)}
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

func (s *Store) All() []saved.Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// View returns the entries having at least one string field that contains
// filter, in store order. An empty filter returns every entry.
func (s *Store) View(filter string) []saved.Entry {
	if s == nil {
		return nil
	}
	if filter == "" {
		return s.entries
	}
	out := make([]saved.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ContainsString(filter) {
			out = append(out, e)
		}
	}
	return out
}
