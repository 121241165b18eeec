// Link entity represents directed, typed edges between studio entities.
package types

import "time"

// Link type constants. A link's source and target entity types must match
// what the caller's slot configuration expects for the link type; storage
// does not enforce it.
const (
	LinkTypeRelatesTo   = "relates_to"   // generic association between entities
	LinkTypeDerivedFrom = "derived_from" // canvas/story derived from another entity
	LinkTypeBelongsTo   = "belongs_to"   // entity → project/venture membership
	LinkTypeReferences  = "references"   // log entry or layer → any entity
)

// validLinkTypes is the set of recognized link type values.
var validLinkTypes = map[string]bool{
	LinkTypeRelatesTo:   true,
	LinkTypeDerivedFrom: true,
	LinkTypeBelongsTo:   true,
	LinkTypeReferences:  true,
}

// ValidLinkType reports whether t is a recognized link type.
func ValidLinkType(t string) bool {
	return validLinkTypes[t]
}

// Link represents a directed, typed edge between two entity references.
// Edges carry (type, id) pairs rather than foreign keys, so dangling
// links are possible; every deletion path that can orphan edges is
// responsible for clearing them.
type Link struct {
	// LinkID is a UUID v7, generated on creation.
	LinkID string

	// LinkType is the relationship type.
	LinkType string

	// SourceType and SourceID identify the source entity.
	SourceType string
	SourceID   string

	// TargetType and TargetID identify the target entity.
	TargetType string
	TargetID   string

	// Position orders links within an ordered slot; nil when unordered.
	Position *int

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time
}

// Source returns the link's source as an EntityRef.
func (l *Link) Source() EntityRef {
	return EntityRef{Type: l.SourceType, ID: l.SourceID}
}

// Target returns the link's target as an EntityRef.
func (l *Link) Target() EntityRef {
	return EntityRef{Type: l.TargetType, ID: l.TargetID}
}

// PendingLink is an in-memory, not-yet-persisted link composed while a new
// parent entity is still being drafted. Once the parent exists, pending
// links are promoted to real Links with the parent as source.
type PendingLink struct {
	TargetType string
	TargetID   string
	LinkType   string
	Position   *int
}
