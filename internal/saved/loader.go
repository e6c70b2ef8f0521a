package saved

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const maxLineBytes = 16 * 1024 * 1024

// ReadJSONL decodes one JSON object per line. Blank lines are skipped; name
// is only used to give errors a location.
func ReadJSONL(r io.Reader, name string) ([]Entry, error) {
	scanner := newLineScanner(r)
	entries := make([]Entry, 0, 64)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return entries, nil
}

// MergeJSONL copies JSON lines from every source to w in order, dropping
// records whose id was already written. Records without an id are always
// kept. It returns the number of lines written.
func MergeJSONL(w io.Writer, sources []NamedReader) (int, error) {
	seen := make(map[string]struct{})
	written := 0
	bw := bufio.NewWriter(w)
	for _, src := range sources {
		scanner := newLineScanner(src.Reader)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			raw := scanner.Bytes()
			if len(bytes.TrimSpace(raw)) == 0 {
				continue
			}
			var probe struct {
				ID any `json:"id"`
			}
			if err := json.Unmarshal(raw, &probe); err != nil {
				return written, fmt.Errorf("%s:%d: %w", src.Name, lineNo, err)
			}
			if probe.ID != nil {
				id := stringify(probe.ID)
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
			}
			if _, err := bw.Write(raw); err != nil {
				return written, fmt.Errorf("write merged output: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return written, fmt.Errorf("write merged output: %w", err)
			}
			written++
		}
		if err := scanner.Err(); err != nil {
			return written, fmt.Errorf("read %s: %w", src.Name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush merged output: %w", err)
	}
	return written, nil
}

// NamedReader pairs an input stream with the name used in error messages.
type NamedReader struct {
	Name   string
	Reader io.Reader
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}
