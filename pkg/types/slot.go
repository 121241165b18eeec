package types

// Link directions for slot queries.
const (
	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)

// Slot describes one kind of relationship an entity can present: the far
// end's entity type, the link type, and the direction in which this
// entity participates. Relationship panels define a slot per row; the
// link graph manager groups the entity's edges into them client-side,
// because the polymorphic links table cannot express the join in SQL.
type Slot struct {
	// Name labels the slot in query results.
	Name string

	// EntityType is the entity type at the far end of the edge.
	EntityType string

	// LinkType selects which edges belong to the slot.
	LinkType string

	// Direction is DirectionOutbound when this entity is the edge source,
	// DirectionInbound when it is the target.
	Direction string

	// Ordered sorts the slot's links by Position instead of creation time.
	Ordered bool
}
