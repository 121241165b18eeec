// Package validate rejects malformed input before any mutation is
// attempted. Validators return a *types.ValidationError rather than
// panicking so callers can surface field-level messages inline.
//
// Mutation paths run validators in a fixed order (entity identity, then
// required text, then optional enums, then optional free text) and stop
// at the first failure. Bulk-create paths are the exception: they
// validate every entry and return all failures joined, because partial
// bulk application is worse than rejecting the whole batch.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/friisj/atelier/pkg/types"
)

// Required trims the value and rejects the empty result.
func Required(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &types.ValidationError{Field: field, Message: "must not be empty"}
	}
	return trimmed, nil
}

// Length trims the value and enforces rune-count bounds. min of zero
// permits an empty value.
func Length(field, value string, min, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	n := utf8.RuneCountInString(trimmed)
	if n < min {
		return "", &types.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", min),
		}
	}
	if max > 0 && n > max {
		return "", &types.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", max),
		}
	}
	return trimmed, nil
}

// Enum checks membership in the allowed set. Empty values are rejected;
// use OptionalEnum for fields that may be absent.
func Enum(field, value string, allowed map[string]bool) (string, error) {
	if !allowed[value] {
		return "", &types.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of %s", joinKeys(allowed)),
		}
	}
	return value, nil
}

// OptionalEnum accepts an empty value and otherwise checks membership.
func OptionalEnum(field, value string, allowed map[string]bool) (string, error) {
	if value == "" {
		return "", nil
	}
	return Enum(field, value, allowed)
}

// Optional trims a value that may be empty and bounds its length.
func Optional(field, value string, max int) (string, error) {
	return Length(field, value, 0, max)
}

// ID rejects empty identifiers. IDs are opaque; no shape is enforced.
func ID(field, value string) (string, error) {
	if value == "" {
		return "", &types.ValidationError{Field: field, Message: "identifier must not be empty"}
	}
	return value, nil
}

// Join combines the non-nil errors of a bulk validation pass into a
// single ValidationError with all messages joined, or returns nil when
// every entry passed.
func Join(errs []error) error {
	var msgs []string
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return &types.ValidationError{Message: strings.Join(msgs, "; ")}
}

// joinKeys renders an allowed set for error messages, sorted for
// deterministic output.
func joinKeys(allowed map[string]bool) string {
	keys := make([]string, 0, len(allowed))
	for k := range allowed {
		keys = append(keys, k)
	}
	// Insertion sort; the sets here hold a handful of values.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return strings.Join(keys, ", ")
}
