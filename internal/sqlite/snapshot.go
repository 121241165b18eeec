package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/friisj/atelier/pkg/types"
)

// JSONL snapshots: one <table>.jsonl file per table, one JSON object per
// line. Exports are deterministic (fixed table order, sorted object keys,
// rows ordered by primary key) so snapshots diff cleanly under version
// control.

// Export writes a snapshot of every table to dir, creating it if needed.
func (s *Store) Export(dir string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, table := range snapshotTables {
		cols := tableColumns[table]
		query := "SELECT " + joinColumns(cols) + " FROM " + table + " ORDER BY " + cols[0]
		rows, err := s.db.Query(query)
		if err != nil {
			return fmt.Errorf("reading %s for snapshot: %w", table, err)
		}
		scanned, err := scanRows(rows, cols)
		rows.Close()
		if err != nil {
			return err
		}

		records := make([]json.RawMessage, 0, len(scanned))
		for _, row := range scanned {
			rec, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("encoding %s row: %w", table, err)
			}
			records = append(records, rec)
		}
		if err := writeJSONL(filepath.Join(dir, table+".jsonl"), records); err != nil {
			return err
		}
	}
	return nil
}

// Import replaces the contents of every table with the records found in
// dir. Tables whose snapshot file is absent are left untouched.
func (s *Store) Import(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	for _, table := range snapshotTables {
		path := filepath.Join(dir, table+".jsonl")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		records, err := readJSONL(path)
		if err != nil {
			return err
		}

		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s for import: %w", table, err)
		}
		for _, rec := range records {
			var raw map[string]any
			if err := json.Unmarshal(rec, &raw); err != nil {
				// readJSONL already filtered invalid JSON; this guards
				// against valid non-object lines.
				continue
			}
			row := make(types.Row, len(raw))
			for k, v := range raw {
				row[k] = normalizeJSONValue(v)
			}
			keys := sortedKeys(row)
			args := make([]any, 0, len(keys))
			placeholders := ""
			for i, k := range keys {
				if i > 0 {
					placeholders += ", "
				}
				placeholders += "?"
				args = append(args, row[k])
			}
			query := "INSERT INTO " + table + " (" + joinColumns(keys) + ") VALUES (" + placeholders + ")"
			if _, err := s.db.Exec(query, args...); err != nil {
				return fmt.Errorf("importing into %s: %w", table, err)
			}
		}
	}
	return nil
}

// normalizeJSONValue maps decoded JSON numbers back to int64 where they
// are integral, so INTEGER columns round-trip without picking up a REAL
// affinity.
func normalizeJSONValue(v any) any {
	if f, ok := v.(float64); ok && f == math.Trunc(f) {
		return int64(f)
	}
	return v
}

// joinColumns renders a column list for interpolation into SQL. Every
// caller passes names from tableColumns, never caller data.
func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line
// as a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
