package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friisj/atelier/pkg/types"
)

func blockWith(ids ...string) types.Block {
	items := make([]types.Item, len(ids))
	for i, id := range ids {
		items[i] = types.Item{ItemID: id, Content: "content " + id}
	}
	return types.Block{Items: items}
}

func TestAddItemsMintsDistinctIDs(t *testing.T) {
	b := blockWith("a", "b")
	next, minted := addItems(b, []types.Item{
		{Content: "one"},
		{Content: "two"},
		{Content: "three"},
	})

	require.Len(t, next.Items, 5)
	require.Len(t, minted, 3)

	seen := map[string]bool{}
	for _, item := range next.Items {
		assert.NotEmpty(t, item.ItemID)
		assert.False(t, seen[item.ItemID], "duplicate id %s", item.ItemID)
		seen[item.ItemID] = true
	}

	// Existing items keep their position, new ones append in input order.
	assert.Equal(t, []string{"a", "b"}, next.ItemIDs()[:2])
	assert.Equal(t, "one", next.Items[2].Content)
	assert.Equal(t, "three", next.Items[4].Content)

	// Input block untouched.
	assert.Len(t, b.Items, 2)
}

func TestUpdateItemPreservesIDAndPosition(t *testing.T) {
	b := blockWith("a", "b", "c")
	content := "rewritten"
	next, updated, err := updateItem(b, "b", types.ItemPatch{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, "b", updated.ItemID)
	assert.Equal(t, "rewritten", updated.Content)
	assert.Equal(t, []string{"a", "b", "c"}, next.ItemIDs())
	assert.Equal(t, "rewritten", next.Items[1].Content)

	// Untouched fields survive.
	assert.Equal(t, "content b", b.Items[1].Content)
}

func TestUpdateItemNotFound(t *testing.T) {
	content := "x"
	_, _, err := updateItem(blockWith("a"), "missing", types.ItemPatch{Content: &content})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteItem(t *testing.T) {
	next, err := deleteItem(blockWith("a", "b", "c"), "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, next.ItemIDs())
}

func TestDeleteItemNotFound(t *testing.T) {
	_, err := deleteItem(blockWith("a"), "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestReorderItemsFullPermutation(t *testing.T) {
	next := reorderItems(blockWith("a", "b", "c"), []string{"c", "a", "b"})
	assert.Equal(t, []string{"c", "a", "b"}, next.ItemIDs())
}

func TestReorderItemsAppendsUnlisted(t *testing.T) {
	// Items missing from the order keep their relative order at the end.
	next := reorderItems(blockWith("a", "b", "c", "d"), []string{"d", "b"})
	assert.Equal(t, []string{"d", "b", "a", "c"}, next.ItemIDs())
}

func TestReorderItemsIgnoresUnknownAndDuplicateIDs(t *testing.T) {
	next := reorderItems(blockWith("a", "b"), []string{"b", "ghost", "b", "a"})
	assert.Equal(t, []string{"b", "a"}, next.ItemIDs())
}

func TestReorderItemsEmptyOrderKeepsEverything(t *testing.T) {
	next := reorderItems(blockWith("a", "b"), nil)
	assert.Equal(t, []string{"a", "b"}, next.ItemIDs())
}
