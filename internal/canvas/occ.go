package canvas

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/friisj/atelier/internal/normalize"
	"github.com/friisj/atelier/pkg/types"
)

// Each mutation attempt walks Start → Reading → {ReadFailed | Read} →
// Transforming → Writing → {Written | Conflict | WriteFailed}. Only the
// terminal outcomes are observable; the whole sequence presents to the
// caller as one atomic-looking call. The three steps are not a database
// transaction; the atomicity is entirely the version guard in
// WriteBlock.

// canvasRow fetches the canvas row. A zero-row result maps to
// types.ErrAccessDenied so callers cannot distinguish "absent" from
// "not visible".
func (s *Service) canvasRow(canvasID string) (types.Row, error) {
	rows, err := s.store.Select(types.TableCanvases, types.Filter{"canvas_id": canvasID})
	if err != nil {
		return nil, dberr(err)
	}
	if len(rows) == 0 {
		return nil, types.ErrAccessDenied
	}
	return rows[0], nil
}

// ReadBlock returns the named block of a canvas in canonical shape along
// with the version observed at read time. The version is the token for a
// later WriteBlock; holding it confers no lock.
func (s *Service) ReadBlock(canvasID, blockName string) (types.Block, int64, error) {
	row, err := s.canvasRow(canvasID)
	if err != nil {
		return types.Block{}, 0, err
	}
	kind, _ := row["kind"].(string)
	if !types.ValidBlockName(kind, blockName) {
		return types.Block{}, 0, &types.ValidationError{
			Field:   "block",
			Message: fmt.Sprintf("unknown block %q for %s canvas", blockName, kind),
		}
	}

	rows, err := s.store.Select(types.TableCanvasBlocks, types.Filter{
		"canvas_id":  canvasID,
		"block_name": blockName,
	})
	if err != nil {
		return types.Block{}, 0, dberr(err)
	}
	if len(rows) == 0 {
		// Block rows are created with the canvas; a missing row means the
		// store is damaged, not that the caller raced anything.
		return types.Block{}, 0, dberr(fmt.Errorf("block row %s/%s missing", canvasID, blockName))
	}

	block := decodeBlock(rows[0]["data"])
	version := rowInt64(rows[0]["version"])
	return block, version, nil
}

// WriteBlock persists a block if and only if the stored version still
// equals expectedVersion. A zero-row update result means the version
// moved and the write is rejected with types.ErrConflict; it is never
// classified as a database failure.
func (s *Service) WriteBlock(canvasID, blockName string, block types.Block, expectedVersion int64) error {
	data, err := json.Marshal(normalize.Block(block))
	if err != nil {
		return dberr(fmt.Errorf("encoding block: %w", err))
	}

	now := time.Now().UTC().Format(time.RFC3339)
	updated, err := s.store.Update(types.TableCanvasBlocks,
		types.Row{
			"data":       string(data),
			"version":    expectedVersion + 1,
			"updated_at": now,
		},
		types.Filter{
			"canvas_id":  canvasID,
			"block_name": blockName,
			"version":    expectedVersion,
		})
	if err != nil {
		return dberr(err)
	}
	if len(updated) == 0 {
		return types.ErrConflict
	}

	// Touch the parent; unconditional, nothing races on this column.
	if _, err := s.store.Update(types.TableCanvases,
		types.Row{"updated_at": now},
		types.Filter{"canvas_id": canvasID}); err != nil {
		return dberr(err)
	}
	return nil
}

// decodeBlock parses a stored JSON block column into canonical shape.
// Malformed or empty data yields an empty block.
func decodeBlock(data any) types.Block {
	text, ok := data.(string)
	if !ok || text == "" || text == "null" {
		return normalize.Block(nil)
	}
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return normalize.Block(nil)
	}
	return normalize.Block(raw)
}

// rowInt64 converts a stored numeric value to int64. SQLite hands back
// int64; fakes and JSON round-trips may hand back float64 or int.
func rowInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
