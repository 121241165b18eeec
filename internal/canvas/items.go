package canvas

import (
	"fmt"

	"github.com/friisj/atelier/internal/validate"
	"github.com/friisj/atelier/pkg/types"
)

// ItemInput carries the caller-supplied fields for a new item. The
// identifier is always minted by the service.
type ItemInput struct {
	Content       string
	Evidence      string
	Type          string
	Effectiveness string
	LinkedPainID  string
	LinkedGainID  string
}

// validateInput checks one item input in the fixed order: required text,
// optional enums, optional free text. The first failure is returned.
func validateInput(input ItemInput) (types.Item, error) {
	content, err := validate.Length("content", input.Content, 1, maxContentLen)
	if err != nil {
		return types.Item{}, err
	}
	itemType, err := validate.OptionalEnum("type", input.Type,
		map[string]bool{types.ItemTypeProduct: true, types.ItemTypeService: true})
	if err != nil {
		return types.Item{}, err
	}
	effectiveness, err := validate.OptionalEnum("effectiveness", input.Effectiveness,
		map[string]bool{
			types.EffectivenessLow:    true,
			types.EffectivenessMedium: true,
			types.EffectivenessHigh:   true,
		})
	if err != nil {
		return types.Item{}, err
	}
	evidence, err := validate.Optional("evidence", input.Evidence, maxEvidenceLen)
	if err != nil {
		return types.Item{}, err
	}
	// Linked ids are opaque foreign identifiers; no resolution check here.
	return types.Item{
		Content:       content,
		Evidence:      evidence,
		Type:          itemType,
		Effectiveness: effectiveness,
		LinkedPainID:  input.LinkedPainID,
		LinkedGainID:  input.LinkedGainID,
	}, nil
}

// AddItem appends a new item to the named block and returns it with its
// minted identifier. Fails with types.ErrConflict when another writer
// moved the block version between read and write.
func (s *Service) AddItem(canvasID, blockName string, input ItemInput) (*types.Item, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}
	if _, err := validate.ID("canvas", canvasID); err != nil {
		return nil, err
	}
	item, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	block, version, err := s.ReadBlock(canvasID, blockName)
	if err != nil {
		return nil, err
	}
	next, minted := addItems(block, []types.Item{item})
	if err := s.WriteBlock(canvasID, blockName, next, version); err != nil {
		return nil, err
	}

	s.revalidate("/canvases/"+canvasID, "page")
	return &minted[0], nil
}

// AddItems appends several items in one write. Unlike the single-item
// path, every input is validated first and all failures are returned
// together; a batch is applied in full or not at all.
func (s *Service) AddItems(canvasID, blockName string, inputs []ItemInput) ([]types.Item, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}
	if _, err := validate.ID("canvas", canvasID); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, &types.ValidationError{Field: "items", Message: "must not be empty"}
	}

	items := make([]types.Item, len(inputs))
	errs := make([]error, len(inputs))
	for i, input := range inputs {
		item, err := validateInput(input)
		if err != nil {
			errs[i] = fmt.Errorf("item %d: %w", i+1, err)
			continue
		}
		items[i] = item
	}
	if err := validate.Join(errs); err != nil {
		return nil, err
	}

	block, version, err := s.ReadBlock(canvasID, blockName)
	if err != nil {
		return nil, err
	}
	next, minted := addItems(block, items)
	if err := s.WriteBlock(canvasID, blockName, next, version); err != nil {
		return nil, err
	}

	s.revalidate("/canvases/"+canvasID, "page")
	return minted, nil
}

// UpdateItem replaces the mutable fields of an existing item. Fields left
// nil in the patch are preserved; the identifier and position never
// change. Fails with types.ErrNotFound when the item is absent.
func (s *Service) UpdateItem(canvasID, blockName, itemID string, patch types.ItemPatch) (*types.Item, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}
	if _, err := validate.ID("canvas", canvasID); err != nil {
		return nil, err
	}
	if _, err := validate.ID("item", itemID); err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	block, version, err := s.ReadBlock(canvasID, blockName)
	if err != nil {
		return nil, err
	}
	next, updated, err := updateItem(block, itemID, patch)
	if err != nil {
		return nil, err
	}
	if err := s.WriteBlock(canvasID, blockName, next, version); err != nil {
		return nil, err
	}

	s.revalidate("/canvases/"+canvasID, "page")
	return &updated, nil
}

// validatePatch applies the same field constraints as creation to the
// patch's non-nil fields.
func validatePatch(patch types.ItemPatch) error {
	if patch.Content != nil {
		if _, err := validate.Length("content", *patch.Content, 1, maxContentLen); err != nil {
			return err
		}
	}
	if patch.Type != nil && *patch.Type != "" {
		if _, err := validate.Enum("type", *patch.Type,
			map[string]bool{types.ItemTypeProduct: true, types.ItemTypeService: true}); err != nil {
			return err
		}
	}
	if patch.Effectiveness != nil && *patch.Effectiveness != "" {
		if _, err := validate.Enum("effectiveness", *patch.Effectiveness,
			map[string]bool{
				types.EffectivenessLow:    true,
				types.EffectivenessMedium: true,
				types.EffectivenessHigh:   true,
			}); err != nil {
			return err
		}
	}
	if patch.Evidence != nil {
		if _, err := validate.Optional("evidence", *patch.Evidence, maxEvidenceLen); err != nil {
			return err
		}
	}
	return nil
}

// DeleteItem removes an item from the named block. Fails with
// types.ErrNotFound when the identifier does not exist in the block.
func (s *Service) DeleteItem(canvasID, blockName, itemID string) error {
	if _, err := s.requireUser(); err != nil {
		return err
	}
	if _, err := validate.ID("canvas", canvasID); err != nil {
		return err
	}
	if _, err := validate.ID("item", itemID); err != nil {
		return err
	}

	block, version, err := s.ReadBlock(canvasID, blockName)
	if err != nil {
		return err
	}
	next, err := deleteItem(block, itemID)
	if err != nil {
		return err
	}
	if err := s.WriteBlock(canvasID, blockName, next, version); err != nil {
		return err
	}

	s.revalidate("/canvases/"+canvasID, "page")
	return nil
}

// ReorderItems rebuilds the block's items in the given identifier order.
// Existing items missing from the order are appended at the end rather
// than dropped; unknown identifiers in the order are ignored. This is
// reachable production behavior and a contract, not a bug to fix.
func (s *Service) ReorderItems(canvasID, blockName string, order []string) error {
	if _, err := s.requireUser(); err != nil {
		return err
	}
	if _, err := validate.ID("canvas", canvasID); err != nil {
		return err
	}

	block, version, err := s.ReadBlock(canvasID, blockName)
	if err != nil {
		return err
	}
	next := reorderItems(block, order)
	if err := s.WriteBlock(canvasID, blockName, next, version); err != nil {
		return err
	}

	s.revalidate("/canvases/"+canvasID, "page")
	return nil
}
