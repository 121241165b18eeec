package canvas

import (
	"github.com/google/uuid"

	"github.com/friisj/atelier/pkg/types"
)

// Pure transforms over the items sequence. None of these touch storage;
// the service wraps each in a ReadBlock/WriteBlock pair.

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// mintItemID returns a fresh identifier guaranteed distinct from every
// identifier already present in the block.
func mintItemID(b types.Block) string {
	existing := make(map[string]bool, len(b.Items))
	for _, item := range b.Items {
		existing[item.ItemID] = true
	}
	for {
		id := newUUID()
		if !existing[id] {
			return id
		}
	}
}

// addItems appends the given items to the block, minting each a fresh
// identifier. Returns the new block and the minted items.
func addItems(b types.Block, items []types.Item) (types.Block, []types.Item) {
	out := make([]types.Item, len(b.Items), len(b.Items)+len(items))
	copy(out, b.Items)
	minted := make([]types.Item, 0, len(items))
	next := types.Block{Items: out}
	for _, item := range items {
		item.ItemID = mintItemID(next)
		next.Items = append(next.Items, item)
		minted = append(minted, item)
	}
	return next, minted
}

// updateItem replaces the mutable fields of the item with the given
// identifier, preserving its identifier and position. Fails with
// types.ErrNotFound when the identifier is absent.
func updateItem(b types.Block, itemID string, patch types.ItemPatch) (types.Block, types.Item, error) {
	idx := b.FindItem(itemID)
	if idx < 0 {
		return types.Block{}, types.Item{}, types.ErrNotFound
	}
	items := make([]types.Item, len(b.Items))
	copy(items, b.Items)
	items[idx] = patch.Apply(items[idx])
	return types.Block{Items: items}, items[idx], nil
}

// deleteItem removes the item with the given identifier. Fails with
// types.ErrNotFound when filtering removes nothing.
func deleteItem(b types.Block, itemID string) (types.Block, error) {
	items := make([]types.Item, 0, len(b.Items))
	for _, item := range b.Items {
		if item.ItemID != itemID {
			items = append(items, item)
		}
	}
	if len(items) == len(b.Items) {
		return types.Block{}, types.ErrNotFound
	}
	return types.Block{Items: items}, nil
}

// reorderItems rebuilds the items sequence in the order given. Existing
// items absent from the order are preserved and appended after the
// reordered items in their original relative order; reorder never loses
// data. Identifiers in the order that match nothing are ignored, as are
// duplicates after the first occurrence.
func reorderItems(b types.Block, order []string) types.Block {
	byID := make(map[string]types.Item, len(b.Items))
	for _, item := range b.Items {
		byID[item.ItemID] = item
	}

	items := make([]types.Item, 0, len(b.Items))
	placed := make(map[string]bool, len(order))
	for _, id := range order {
		if placed[id] {
			continue
		}
		if item, ok := byID[id]; ok {
			items = append(items, item)
			placed[id] = true
		}
	}
	for _, item := range b.Items {
		if !placed[item.ItemID] {
			items = append(items, item)
		}
	}
	return types.Block{Items: items}
}
