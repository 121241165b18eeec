// Package normalize coerces possibly-malformed block values read from
// storage into canonical shapes.
//
// Every function here is total and idempotent: nil, missing sub-fields,
// and older schema shapes all yield empty-but-well-typed defaults, and
// normalizing an already-normalized value returns an equivalent value.
// Nothing in this package touches storage or returns an error.
package normalize

import "github.com/friisj/atelier/pkg/types"

// Block converts an arbitrary stored value into a canonical Block with a
// guaranteed non-nil Items slice.
//
// Accepted shapes: a Block (possibly with a nil Items slice), a JSON
// object with an "items" array, or a bare JSON array from the oldest
// schema version. Anything else yields an empty block. Item entries
// whose identifier cannot be recovered are dropped; everything else is
// preserved in order.
func Block(raw any) types.Block {
	switch v := raw.(type) {
	case types.Block:
		if v.Items == nil {
			v.Items = []types.Item{}
		}
		return v
	case *types.Block:
		if v == nil {
			return types.Block{Items: []types.Item{}}
		}
		return Block(*v)
	case map[string]any:
		return itemsBlock(v["items"])
	case []any:
		// Oldest schema stored the items array bare, without the wrapper.
		return itemsBlock(v)
	default:
		return types.Block{Items: []types.Item{}}
	}
}

// itemsBlock normalizes a raw items value into a Block.
func itemsBlock(raw any) types.Block {
	list, ok := raw.([]any)
	if !ok {
		return types.Block{Items: []types.Item{}}
	}
	items := make([]types.Item, 0, len(list))
	for _, entry := range list {
		if item, ok := Item(entry); ok {
			items = append(items, item)
		}
	}
	return types.Block{Items: items}
}

// Item coerces a raw entry into an Item. The second result is false when
// the entry has no recoverable identifier and must be dropped.
func Item(raw any) (types.Item, bool) {
	switch v := raw.(type) {
	case types.Item:
		return v, v.ItemID != ""
	case map[string]any:
		item := types.Item{
			ItemID:        asString(v["id"]),
			Content:       asString(v["content"]),
			Evidence:      asString(v["evidence"]),
			Type:          asString(v["type"]),
			Effectiveness: asString(v["effectiveness"]),
			LinkedPainID:  asString(v["linked_pain_id"]),
			LinkedGainID:  asString(v["linked_gain_id"]),
		}
		if item.ItemID == "" {
			// An older schema keyed the identifier as "item_id".
			item.ItemID = asString(v["item_id"])
		}
		return item, item.ItemID != ""
	default:
		return types.Item{}, false
	}
}

// BlockMeta converts a legacy canvas-block metadata value into canonical
// shape: non-nil ItemIDs and AssumptionIDs, and a validation status
// defaulting to "untested" when absent or unrecognized.
func BlockMeta(raw any) types.BlockMeta {
	meta := types.BlockMeta{
		ItemIDs:          []string{},
		AssumptionIDs:    []string{},
		ValidationStatus: types.ValidationUntested,
	}

	switch v := raw.(type) {
	case types.BlockMeta:
		meta.ItemIDs = stringSlice(v.ItemIDs)
		meta.AssumptionIDs = stringSlice(v.AssumptionIDs)
		if types.ValidValidationStatus(v.ValidationStatus) {
			meta.ValidationStatus = v.ValidationStatus
		}
	case map[string]any:
		meta.ItemIDs = asStringList(v["item_ids"])
		meta.AssumptionIDs = asStringList(v["assumption_ids"])
		if s := asString(v["validation_status"]); types.ValidValidationStatus(s) {
			meta.ValidationStatus = s
		}
	}
	return meta
}

// asString returns v as a string, or "" for any other type.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringList coerces a raw JSON array into a string slice, skipping
// non-string entries. Never returns nil.
func asStringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// stringSlice returns a non-nil copy of ids.
func stringSlice(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
