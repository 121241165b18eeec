// Package sqlite implements the row store on SQLite. The database file is
// the source of truth; JSONL snapshots (snapshot.go) are an on-demand
// export format, not a write-through copy.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/friisj/atelier/pkg/types"
)

// Store implements types.Store using SQLite as the query engine.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	dataDir  string
}

// NewStore creates a new SQLite store instance. The store is not
// attached; call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates
// DataDir if it does not exist and applies the schema. Returns
// ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, "atelier.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying indexes: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.dataDir = dataDir
	s.attached = true
	return nil
}

// Detach releases all resources held by the store. After Detach, all
// operations return ErrStoreDetached. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// Select returns all rows of table matching the filter. An empty filter
// returns every row.
func (s *Store) Select(table string, filter types.Filter) ([]types.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	cols, ok := tableColumns[table]
	if !ok {
		return nil, types.ErrTableNotFound
	}

	where, args, err := buildWhere(table, filter)
	if err != nil {
		return nil, err
	}
	query := "SELECT " + strings.Join(cols, ", ") + " FROM " + table + where

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting from %s: %w", table, err)
	}
	defer rows.Close()
	return scanRows(rows, cols)
}

// Insert adds the given rows and returns them. Every key in every row
// must be a known column of the table.
func (s *Store) Insert(table string, rowsIn []types.Row) ([]types.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	allowed, ok := tableColumns[table]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	colSet := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		colSet[c] = true
	}

	for _, row := range rowsIn {
		keys := sortedKeys(row)
		if len(keys) == 0 {
			return nil, types.ErrInvalidData
		}
		args := make([]any, 0, len(keys))
		placeholders := make([]string, 0, len(keys))
		for _, k := range keys {
			if !colSet[k] {
				return nil, fmt.Errorf("%w: unknown column %q", types.ErrInvalidData, k)
			}
			args = append(args, row[k])
			placeholders = append(placeholders, "?")
		}
		query := "INSERT INTO " + table + " (" + strings.Join(keys, ", ") +
			") VALUES (" + strings.Join(placeholders, ", ") + ")"
		if _, err := s.db.Exec(query, args...); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint") {
				return nil, types.ErrDuplicate
			}
			return nil, fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return rowsIn, nil
}

// Update applies patch to every row matching the filter and returns the
// updated rows. The match and the write happen in one transaction; a
// zero-length result means no row matched the full filter, which the
// caller classifies.
func (s *Store) Update(table string, patch types.Row, filter types.Filter) ([]types.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	cols, ok := tableColumns[table]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	colSet := make(map[string]bool, len(cols))
	for _, c := range cols {
		colSet[c] = true
	}
	patchKeys := sortedKeys(patch)
	if len(patchKeys) == 0 {
		return nil, types.ErrInvalidData
	}
	for _, k := range patchKeys {
		if !colSet[k] {
			return nil, fmt.Errorf("%w: unknown column %q", types.ErrInvalidData, k)
		}
	}
	where, whereArgs, err := buildWhere(table, filter)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning update: %w", err)
	}
	defer tx.Rollback()

	// Pin the matching rows by rowid first; the filter may stop matching
	// once the patch lands (the version bump does exactly that).
	rowids, err := selectRowIDs(tx, table, where, whereArgs)
	if err != nil {
		return nil, err
	}
	if len(rowids) == 0 {
		return []types.Row{}, nil
	}

	sets := make([]string, 0, len(patchKeys))
	args := make([]any, 0, len(patchKeys)+len(rowids))
	for _, k := range patchKeys {
		sets = append(sets, k+" = ?")
		args = append(args, patch[k])
	}
	idPlaceholders := make([]string, len(rowids))
	for i, id := range rowids {
		idPlaceholders[i] = "?"
		args = append(args, id)
	}
	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") +
		" WHERE rowid IN (" + strings.Join(idPlaceholders, ",") + ")"
	if _, err := tx.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("updating %s: %w", table, err)
	}

	reselect := "SELECT " + strings.Join(cols, ", ") + " FROM " + table +
		" WHERE rowid IN (" + strings.Join(idPlaceholders, ",") + ")"
	idArgs := make([]any, len(rowids))
	for i, id := range rowids {
		idArgs[i] = id
	}
	rows, err := tx.Query(reselect, idArgs...)
	if err != nil {
		return nil, fmt.Errorf("reselecting from %s: %w", table, err)
	}
	updated, err := scanRows(rows, cols)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update: %w", err)
	}
	return updated, nil
}

// Delete removes all rows matching the filter. Deleting zero rows is not
// an error.
func (s *Store) Delete(table string, filter types.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if _, ok := tableColumns[table]; !ok {
		return types.ErrTableNotFound
	}
	where, args, err := buildWhere(table, filter)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM "+table+where, args...); err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	return nil
}

// buildWhere renders a filter into a WHERE clause with placeholder args.
// Keys are sorted so generated SQL is deterministic. Scalars compare by
// equality, slices by IN, nil by IS NULL.
func buildWhere(table string, filter types.Filter) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	allowed, ok := tableColumns[table]
	if !ok {
		return "", nil, types.ErrTableNotFound
	}
	colSet := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		colSet[c] = true
	}

	keys := sortedKeys(filter)
	conditions := make([]string, 0, len(keys))
	var args []any
	for _, k := range keys {
		if !colSet[k] {
			return "", nil, fmt.Errorf("%w: unknown column %q", types.ErrInvalidFilter, k)
		}
		switch v := filter[k].(type) {
		case nil:
			conditions = append(conditions, k+" IS NULL")
		case string, int, int64, float64, bool:
			conditions = append(conditions, k+" = ?")
			args = append(args, v)
		case []string:
			if len(v) == 0 {
				// Empty set matches nothing.
				conditions = append(conditions, "1 = 0")
				continue
			}
			placeholders := make([]string, len(v))
			for i, s := range v {
				placeholders[i] = "?"
				args = append(args, s)
			}
			conditions = append(conditions, k+" IN ("+strings.Join(placeholders, ",")+")")
		case []any:
			if len(v) == 0 {
				conditions = append(conditions, "1 = 0")
				continue
			}
			placeholders := make([]string, len(v))
			for i, e := range v {
				switch e.(type) {
				case string, int, int64, float64:
					placeholders[i] = "?"
					args = append(args, e)
				default:
					return "", nil, fmt.Errorf("%w: unsupported value in %q", types.ErrInvalidFilter, k)
				}
			}
			conditions = append(conditions, k+" IN ("+strings.Join(placeholders, ",")+")")
		default:
			return "", nil, fmt.Errorf("%w: unsupported value for %q", types.ErrInvalidFilter, k)
		}
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

// selectRowIDs returns the rowids of rows matching the rendered filter.
func selectRowIDs(tx *sql.Tx, table, where string, args []any) ([]int64, error) {
	rows, err := tx.Query("SELECT rowid FROM "+table+where, args...)
	if err != nil {
		return nil, fmt.Errorf("matching rows in %s: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning rowid: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// scanRows reads every row into a Row map keyed by column name. BLOB
// values come back as []byte and are normalized to string.
func scanRows(rows *sql.Rows, cols []string) ([]types.Row, error) {
	results := []types.Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make(types.Row, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				row[c] = string(b)
				continue
			}
			row[c] = values[i]
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
