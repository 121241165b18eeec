package types

// Item type values for products_services entries.
const (
	ItemTypeProduct = "product"
	ItemTypeService = "service"
)

// Effectiveness levels for reliever and creator items.
const (
	EffectivenessLow    = "low"
	EffectivenessMedium = "medium"
	EffectivenessHigh   = "high"
)

// validItemTypes is the set of recognized item type values.
var validItemTypes = map[string]bool{
	ItemTypeProduct: true,
	ItemTypeService: true,
}

// validEffectiveness is the set of recognized effectiveness values.
var validEffectiveness = map[string]bool{
	EffectivenessLow:    true,
	EffectivenessMedium: true,
	EffectivenessHigh:   true,
}

// ValidItemType reports whether t is a recognized item type.
func ValidItemType(t string) bool {
	return validItemTypes[t]
}

// ValidEffectiveness reports whether e is a recognized effectiveness level.
func ValidEffectiveness(e string) bool {
	return validEffectiveness[e]
}

// Item is a single entry within a Block. The identifier is unique within
// the owning block at all times. LinkedPainID and LinkedGainID are opaque
// cross-references; nothing at this layer checks that they resolve.
type Item struct {
	ItemID        string `json:"id"`
	Content       string `json:"content"`
	Evidence      string `json:"evidence,omitempty"`
	Type          string `json:"type,omitempty"`
	Effectiveness string `json:"effectiveness,omitempty"`
	LinkedPainID  string `json:"linked_pain_id,omitempty"`
	LinkedGainID  string `json:"linked_gain_id,omitempty"`
}

// ItemPatch carries replacement values for an item's mutable fields.
// Nil fields are left untouched. The item identifier is never patched.
type ItemPatch struct {
	Content       *string
	Evidence      *string
	Type          *string
	Effectiveness *string
	LinkedPainID  *string
	LinkedGainID  *string
}

// Apply replaces the item's mutable fields with the patch's non-nil values
// and returns the result. The receiver is not modified.
func (p ItemPatch) Apply(item Item) Item {
	if p.Content != nil {
		item.Content = *p.Content
	}
	if p.Evidence != nil {
		item.Evidence = *p.Evidence
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Effectiveness != nil {
		item.Effectiveness = *p.Effectiveness
	}
	if p.LinkedPainID != nil {
		item.LinkedPainID = *p.LinkedPainID
	}
	if p.LinkedGainID != nil {
		item.LinkedGainID = *p.LinkedGainID
	}
	return item
}
