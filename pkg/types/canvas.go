package types

import "time"

// Canvas kinds.
const (
	KindValueMap = "value_map"
	KindStoryMap = "story_map"
)

// validCanvasKinds is the set of recognized canvas kinds.
var validCanvasKinds = map[string]bool{
	KindValueMap: true,
	KindStoryMap: true,
}

// ValidCanvasKind reports whether kind is recognized.
func ValidCanvasKind(kind string) bool {
	return validCanvasKinds[kind]
}

// Canvas is a parent record holding named blocks of items. Blocks are
// created implicitly when the canvas is created and are mutated only
// through the optimistic-concurrency controller; each block carries its
// own version counter so edits to different blocks never interact.
type Canvas struct {
	CanvasID  string           // UUID v7, generated on creation.
	Name      string           // Human-readable name (required, non-empty).
	Kind      string           // value_map or story_map.
	OwnerID   string           // User that created the canvas.
	Blocks    map[string]Block // Block name → normalized block.
	CreatedAt time.Time
	UpdatedAt time.Time
}
