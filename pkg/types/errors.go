package types

import "errors"

// Mutation outcome errors. Every mutation entry point maps storage-layer
// failures into one of these kinds; nothing else crosses the core boundary.
var (
	// ErrUnauthorized means no authenticated session exists.
	ErrUnauthorized = errors.New("not authenticated")

	// ErrAccessDenied means the session exists but the referenced parent
	// record is not visible. A row-store "not found" on the parent maps
	// here so callers cannot probe for existence.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound means the operation targets an item or link identifier
	// that does not exist within its parent.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict means the optimistic version check failed. The caller
	// should refresh and retry; the core never retries automatically.
	ErrConflict = errors.New("record was modified concurrently")

	// ErrDatabase covers any other storage failure. The message stays
	// generic; the wrapped chain carries the detail.
	ErrDatabase = errors.New("database error")

	// ErrDuplicate is a unique-constraint violation surfaced from storage.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrValidation is the kind matched by ValidationError values.
	ErrValidation = errors.New("validation failed")
)

// Store argument and lifecycle errors.
var (
	ErrInvalidID       = errors.New("invalid entity ID")
	ErrInvalidData     = errors.New("invalid entity data")
	ErrInvalidFilter   = errors.New("invalid filter value type")
	ErrTableNotFound   = errors.New("table not found")
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// ValidationError reports a field-level constraint failure. It is returned
// as a structured value rather than panicking so callers can surface the
// message inline next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
