package types

// Row is a single storage row keyed by column name.
type Row map[string]any

// Filter selects rows by column value. A scalar value matches by
// equality; a []string or []any value matches by set membership.
// Conditions combine with AND.
type Filter map[string]any

// Store provides row-level access to the relational backend. Row-level
// security and session plumbing live behind this interface; the core
// only sees rows it is allowed to see.
//
// Callers attach with a Config, operate on tables by name, and detach
// when done. After Detach, operations return ErrStoreDetached.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// Select returns all rows of table matching the filter. An empty
	// filter returns every row.
	Select(table string, filter Filter) ([]Row, error)

	// Insert adds the given rows and returns them.
	Insert(table string, rows []Row) ([]Row, error)

	// Update applies patch to every row matching the filter and returns
	// the updated rows. The compound AND filter is what the optimistic
	// lock relies on: a zero-length result means no row matched, which
	// the caller classifies (stale version → conflict).
	Update(table string, patch Row, filter Filter) ([]Row, error)

	// Delete removes all rows matching the filter. Deleting zero rows is
	// not an error.
	Delete(table string, filter Filter) error
}

// Session reports the authenticated user for the current request. The
// core enforces only authenticated-vs-not; finer authorization is the
// row store's job.
type Session interface {
	// CurrentUser returns the user ID, or "" when unauthenticated.
	CurrentUser() (string, error)
}

// Revalidator receives fire-and-forget staleness notifications after a
// mutation lands. Implementations must not block the mutation path and
// are never consulted for correctness.
type Revalidator interface {
	Revalidate(path, scope string)
}
