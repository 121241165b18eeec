package types

// Entity type tags for linkable records. Link rows store these tags rather
// than foreign keys, so the tag→table registry below is the only mapping
// between a reference and its physical table. Keep it in sync with the
// store schema by hand.
const (
	EntityCanvas   = "canvas"
	EntityProject  = "project"
	EntityVenture  = "venture"
	EntityStory    = "story"
	EntityActivity = "activity"
	EntityLayer    = "layer"
	EntityLogEntry = "log_entry"
)

// Physical table names.
const (
	TableCanvases     = "canvases"
	TableCanvasBlocks = "canvas_blocks"
	TableLinks        = "links"
	TableProjects     = "projects"
	TableVentures     = "ventures"
	TableStories      = "stories"
	TableActivities   = "activities"
	TableLayers       = "layers"
	TableLogEntries   = "log_entries"
)

// entityTables maps entity type tags to physical tables.
var entityTables = map[string]string{
	EntityCanvas:   TableCanvases,
	EntityProject:  TableProjects,
	EntityVenture:  TableVentures,
	EntityStory:    TableStories,
	EntityActivity: TableActivities,
	EntityLayer:    TableLayers,
	EntityLogEntry: TableLogEntries,
}

// ValidEntityType reports whether t is a registered entity type tag.
func ValidEntityType(t string) bool {
	_, ok := entityTables[t]
	return ok
}

// TableFor returns the physical table for an entity type tag.
func TableFor(entityType string) (string, bool) {
	table, ok := entityTables[entityType]
	return table, ok
}

// EntityRef identifies any linkable record as a (type, id) pair. It is a
// parameter object; references are never persisted on their own, and the
// ID is an opaque foreign identifier with no integrity enforcement at
// this layer.
type EntityRef struct {
	Type string
	ID   string
}

// Validate checks that the reference names a registered entity type and a
// non-empty identifier.
func (r EntityRef) Validate() error {
	if r.ID == "" {
		return ErrInvalidID
	}
	if !ValidEntityType(r.Type) {
		return ErrInvalidData
	}
	return nil
}
