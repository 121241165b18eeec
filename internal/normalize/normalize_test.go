package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friisj/atelier/pkg/types"
)

func TestBlockTotality(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"empty object", map[string]any{}},
		{"wrong type", 42},
		{"string", "not a block"},
		{"items not a list", map[string]any{"items": "oops"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Block(tt.raw)
			require.NotNil(t, got.Items)
			assert.Empty(t, got.Items)
		})
	}
}

func TestBlockFromJSON(t *testing.T) {
	t.Run("canonical shape", func(t *testing.T) {
		var raw any
		require.NoError(t, json.Unmarshal([]byte(
			`{"items":[{"id":"i1","content":"Free trial","effectiveness":"high"}]}`), &raw))

		got := Block(raw)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "i1", got.Items[0].ItemID)
		assert.Equal(t, "Free trial", got.Items[0].Content)
		assert.Equal(t, types.EffectivenessHigh, got.Items[0].Effectiveness)
		assert.Empty(t, got.Items[0].Evidence)
	})

	t.Run("bare array from oldest schema", func(t *testing.T) {
		var raw any
		require.NoError(t, json.Unmarshal([]byte(
			`[{"id":"i1","content":"a"},{"id":"i2","content":"b"}]`), &raw))

		got := Block(raw)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "i2", got.Items[1].ItemID)
	})

	t.Run("item_id key from older schema", func(t *testing.T) {
		var raw any
		require.NoError(t, json.Unmarshal([]byte(
			`{"items":[{"item_id":"legacy","content":"x"}]}`), &raw))

		got := Block(raw)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "legacy", got.Items[0].ItemID)
	})

	t.Run("entries without id are dropped", func(t *testing.T) {
		var raw any
		require.NoError(t, json.Unmarshal([]byte(
			`{"items":[{"content":"no id"},{"id":"i1","content":"kept"}]}`), &raw))

		got := Block(raw)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "i1", got.Items[0].ItemID)
	})
}

func TestBlockIdempotence(t *testing.T) {
	inputs := []any{
		nil,
		map[string]any{},
		map[string]any{"items": []any{
			map[string]any{"id": "i1", "content": "a", "evidence": "e"},
			map[string]any{"id": "i2", "content": "b", "type": "product"},
		}},
		[]any{map[string]any{"id": "i3", "content": "c"}},
	}
	for _, raw := range inputs {
		once := Block(raw)
		twice := Block(once)
		assert.Equal(t, once, twice)
	}
}

func TestBlockPreservesNilItemsSlice(t *testing.T) {
	got := Block(types.Block{})
	require.NotNil(t, got.Items)

	ptr := Block((*types.Block)(nil))
	require.NotNil(t, ptr.Items)
}

func TestBlockMeta(t *testing.T) {
	t.Run("nil yields defaults", func(t *testing.T) {
		got := BlockMeta(nil)
		require.NotNil(t, got.ItemIDs)
		require.NotNil(t, got.AssumptionIDs)
		assert.Equal(t, types.ValidationUntested, got.ValidationStatus)
	})

	t.Run("legacy record gets arrays and default status", func(t *testing.T) {
		got := BlockMeta(map[string]any{"item_ids": []any{"a", "b"}})
		assert.Equal(t, []string{"a", "b"}, got.ItemIDs)
		assert.Equal(t, []string{}, got.AssumptionIDs)
		assert.Equal(t, types.ValidationUntested, got.ValidationStatus)
	})

	t.Run("recognized status is preserved", func(t *testing.T) {
		got := BlockMeta(map[string]any{"validation_status": types.ValidationValidated})
		assert.Equal(t, types.ValidationValidated, got.ValidationStatus)
	})

	t.Run("unrecognized status falls back to untested", func(t *testing.T) {
		got := BlockMeta(map[string]any{"validation_status": "confirmed"})
		assert.Equal(t, types.ValidationUntested, got.ValidationStatus)
	})

	t.Run("idempotent", func(t *testing.T) {
		raw := map[string]any{
			"item_ids":          []any{"x"},
			"assumption_ids":    []any{"y", 3, "z"},
			"validation_status": types.ValidationTesting,
		}
		once := BlockMeta(raw)
		assert.Equal(t, once, BlockMeta(once))
	})
}
