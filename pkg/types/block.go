package types

// Block names for value map canvases.
const (
	BlockProductsServices = "products_services"
	BlockPainRelievers    = "pain_relievers"
	BlockGainCreators     = "gain_creators"
	BlockPains            = "pains"
	BlockGains            = "gains"
)

// Block names for story map canvases.
const (
	BlockActivities = "activities"
	BlockSteps      = "steps"
	BlockStories    = "stories"
)

// Validation statuses for legacy canvas-block metadata records.
const (
	ValidationUntested    = "untested"
	ValidationTesting     = "testing"
	ValidationValidated   = "validated"
	ValidationInvalidated = "invalidated"
)

// validValidationStatuses is the set of recognized validation statuses.
var validValidationStatuses = map[string]bool{
	ValidationUntested:    true,
	ValidationTesting:     true,
	ValidationValidated:   true,
	ValidationInvalidated: true,
}

// ValidValidationStatus reports whether s is a recognized status.
func ValidValidationStatus(s string) bool {
	return validValidationStatuses[s]
}

// canvasBlocks maps a canvas kind to the block names it carries. Blocks
// are created with the canvas and deleted only with it.
var canvasBlocks = map[string][]string{
	KindValueMap: {
		BlockProductsServices,
		BlockPainRelievers,
		BlockGainCreators,
		BlockPains,
		BlockGains,
	},
	KindStoryMap: {
		BlockActivities,
		BlockSteps,
		BlockStories,
	},
}

// BlockNames returns the block names for a canvas kind, or nil for an
// unknown kind. The returned slice is a copy.
func BlockNames(kind string) []string {
	names, ok := canvasBlocks[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ValidBlockName reports whether name is a block of the given canvas kind.
func ValidBlockName(kind, name string) bool {
	for _, n := range canvasBlocks[kind] {
		if n == name {
			return true
		}
	}
	return false
}

// Block is a named ordered collection of Items nested inside a canvas.
// Regardless of storage state, a block normalizes to this shape with a
// non-nil Items slice.
type Block struct {
	Items []Item `json:"items"`
}

// ItemIDs returns the identifiers of the block's items in order.
func (b Block) ItemIDs() []string {
	ids := make([]string, len(b.Items))
	for i, item := range b.Items {
		ids[i] = item.ItemID
	}
	return ids
}

// FindItem returns the index of the item with the given identifier,
// or -1 when absent.
func (b Block) FindItem(id string) int {
	for i, item := range b.Items {
		if item.ItemID == id {
			return i
		}
	}
	return -1
}

// BlockMeta is the legacy canvas-block metadata shape carried by older
// canvases. Normalization guarantees non-nil ID slices and a defaulted
// validation status.
type BlockMeta struct {
	ItemIDs          []string `json:"item_ids"`
	AssumptionIDs    []string `json:"assumption_ids"`
	ValidationStatus string   `json:"validation_status"`
}
