package canvas

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/friisj/atelier/internal/normalize"
	"github.com/friisj/atelier/internal/validate"
	"github.com/friisj/atelier/pkg/types"
)

// CreateCanvas inserts a new canvas with one empty block row per block
// of its kind. Pending links composed while drafting are promoted to
// real links with the new canvas as source.
func (s *Service) CreateCanvas(name, kind string, pending []types.PendingLink) (*types.Canvas, error) {
	user, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	name, err = validate.Length("name", name, 1, maxNameLen)
	if err != nil {
		return nil, err
	}
	if !types.ValidCanvasKind(kind) {
		return nil, &types.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("must be %s or %s", types.KindValueMap, types.KindStoryMap),
		}
	}

	now := time.Now().UTC()
	ts := now.Format(time.RFC3339)
	canvasID := newUUID()

	if _, err := s.store.Insert(types.TableCanvases, []types.Row{{
		"canvas_id":  canvasID,
		"name":       name,
		"kind":       kind,
		"owner_id":   user,
		"created_at": ts,
		"updated_at": ts,
	}}); err != nil {
		return nil, dberr(err)
	}

	empty, err := json.Marshal(normalize.Block(nil))
	if err != nil {
		return nil, dberr(err)
	}
	blockNames := types.BlockNames(kind)
	blockRows := make([]types.Row, 0, len(blockNames))
	blocks := make(map[string]types.Block, len(blockNames))
	for _, blockName := range blockNames {
		blockRows = append(blockRows, types.Row{
			"canvas_id":  canvasID,
			"block_name": blockName,
			"data":       string(empty),
			"version":    int64(1),
			"updated_at": ts,
		})
		blocks[blockName] = normalize.Block(nil)
	}
	if _, err := s.store.Insert(types.TableCanvasBlocks, blockRows); err != nil {
		return nil, dberr(err)
	}

	if len(pending) > 0 {
		source := types.EntityRef{Type: types.EntityCanvas, ID: canvasID}
		if err := s.links.Promote(source, pending); err != nil {
			return nil, err
		}
	}

	s.revalidate("/canvases", "layout")
	return &types.Canvas{
		CanvasID:  canvasID,
		Name:      name,
		Kind:      kind,
		OwnerID:   user,
		Blocks:    blocks,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetCanvas returns a canvas with all its blocks in canonical shape.
func (s *Service) GetCanvas(canvasID string) (*types.Canvas, error) {
	if _, err := validate.ID("canvas", canvasID); err != nil {
		return nil, err
	}
	row, err := s.canvasRow(canvasID)
	if err != nil {
		return nil, err
	}
	c, err := hydrateCanvas(row)
	if err != nil {
		return nil, dberr(err)
	}

	blockRows, err := s.store.Select(types.TableCanvasBlocks, types.Filter{"canvas_id": canvasID})
	if err != nil {
		return nil, dberr(err)
	}
	c.Blocks = make(map[string]types.Block, len(blockRows))
	for _, br := range blockRows {
		name, _ := br["block_name"].(string)
		c.Blocks[name] = decodeBlock(br["data"])
	}
	return c, nil
}

// ListCanvases returns the current user's canvases, optionally filtered
// by kind.
func (s *Service) ListCanvases(kind string) ([]*types.Canvas, error) {
	user, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	filter := types.Filter{"owner_id": user}
	if kind != "" {
		if !types.ValidCanvasKind(kind) {
			return nil, &types.ValidationError{Field: "kind", Message: "unknown canvas kind"}
		}
		filter["kind"] = kind
	}

	rows, err := s.store.Select(types.TableCanvases, filter)
	if err != nil {
		return nil, dberr(err)
	}
	canvases := make([]*types.Canvas, 0, len(rows))
	for _, row := range rows {
		c, err := hydrateCanvas(row)
		if err != nil {
			return nil, dberr(err)
		}
		canvases = append(canvases, c)
	}
	return canvases, nil
}

// DeleteCanvas removes a canvas, its block rows, and every link touching
// it in either direction. Clearing the edges here is what keeps the
// polymorphic links table free of dangling references; the store
// enforces nothing.
func (s *Service) DeleteCanvas(canvasID string) error {
	if _, err := s.requireUser(); err != nil {
		return err
	}
	if _, err := validate.ID("canvas", canvasID); err != nil {
		return err
	}
	if _, err := s.canvasRow(canvasID); err != nil {
		return err
	}

	if err := s.store.Delete(types.TableLinks, types.Filter{
		"source_type": types.EntityCanvas, "source_id": canvasID,
	}); err != nil {
		return dberr(err)
	}
	if err := s.store.Delete(types.TableLinks, types.Filter{
		"target_type": types.EntityCanvas, "target_id": canvasID,
	}); err != nil {
		return dberr(err)
	}
	if err := s.store.Delete(types.TableCanvasBlocks, types.Filter{"canvas_id": canvasID}); err != nil {
		return dberr(err)
	}
	if err := s.store.Delete(types.TableCanvases, types.Filter{"canvas_id": canvasID}); err != nil {
		return dberr(err)
	}

	s.revalidate("/canvases", "layout")
	return nil
}

// hydrateCanvas converts a canvases row into a Canvas without blocks.
func hydrateCanvas(row types.Row) (*types.Canvas, error) {
	c := &types.Canvas{
		CanvasID: rowString(row["canvas_id"]),
		Name:     rowString(row["name"]),
		Kind:     rowString(row["kind"]),
		OwnerID:  rowString(row["owner_id"]),
	}
	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, rowString(row["created_at"]))
	if err != nil {
		return nil, fmt.Errorf("parsing canvas created_at: %w", err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, rowString(row["updated_at"]))
	if err != nil {
		return nil, fmt.Errorf("parsing canvas updated_at: %w", err)
	}
	return c, nil
}

// rowString returns v as a string, or "" for any other type.
func rowString(v any) string {
	s, _ := v.(string)
	return s
}
