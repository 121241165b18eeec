// Package linkgraph maintains the directed multigraph of typed edges
// between heterogeneous studio entities.
//
// Edges store (type, id) pairs rather than foreign keys, so no SQL join
// can cross them; queries fetch an entity's outbound and inbound edges
// and group them client-side by slot. Integrity is cooperative: any
// deletion path that can orphan edges must clear them itself.
package linkgraph

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/friisj/atelier/pkg/types"
)

// Manager executes link graph operations against the row store.
type Manager struct {
	store types.Store
}

// NewManager returns a Manager bound to the given store.
func NewManager(store types.Store) *Manager {
	return &Manager{store: store}
}

// Link inserts one directed edge. No dedup check is performed here:
// callers wanting at-most-one edge of a type between two entities go
// through Sync instead.
func (m *Manager) Link(source, target types.EntityRef, linkType string, position *int) (*types.Link, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if !types.ValidLinkType(linkType) {
		return nil, types.ErrInvalidData
	}

	link := &types.Link{
		LinkID:     uuid.Must(uuid.NewV7()).String(),
		LinkType:   linkType,
		SourceType: source.Type,
		SourceID:   source.ID,
		TargetType: target.Type,
		TargetID:   target.ID,
		Position:   position,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := m.store.Insert(types.TableLinks, []types.Row{dehydrateLink(link)}); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrDatabase, err)
	}
	return link, nil
}

// Unlink removes a single edge by its own identifier. Deleting an edge
// that no longer exists is not an error; concurrent deleters may race
// and both should succeed.
func (m *Manager) Unlink(linkID string) error {
	if linkID == "" {
		return types.ErrInvalidID
	}
	if err := m.store.Delete(types.TableLinks, types.Filter{"link_id": linkID}); err != nil {
		return fmt.Errorf("%w: %v", types.ErrDatabase, err)
	}
	return nil
}

// Outbound returns the edges where source is the source, optionally
// narrowed by target type and link type.
func (m *Manager) Outbound(source types.EntityRef, targetType, linkType string) ([]*types.Link, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}
	filter := types.Filter{
		"source_type": source.Type,
		"source_id":   source.ID,
	}
	if targetType != "" {
		filter["target_type"] = targetType
	}
	if linkType != "" {
		filter["link_type"] = linkType
	}
	return m.fetch(filter)
}

// Inbound returns the edges where target is the target, optionally
// narrowed by source type and link type.
func (m *Manager) Inbound(target types.EntityRef, sourceType, linkType string) ([]*types.Link, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	filter := types.Filter{
		"target_type": target.Type,
		"target_id":   target.ID,
	}
	if sourceType != "" {
		filter["source_type"] = sourceType
	}
	if linkType != "" {
		filter["link_type"] = linkType
	}
	return m.fetch(filter)
}

// Sync reconciles source's outbound edges of the given target type and
// link type against desiredIDs: edges to missing targets are inserted,
// edges to targets not in the set are deleted. Existing edges in the set
// are left untouched.
func (m *Manager) Sync(source types.EntityRef, targetType, linkType string, desiredIDs []string) error {
	if err := source.Validate(); err != nil {
		return err
	}
	if !types.ValidEntityType(targetType) {
		return types.ErrInvalidData
	}
	if !types.ValidLinkType(linkType) {
		return types.ErrInvalidData
	}

	current, err := m.Outbound(source, targetType, linkType)
	if err != nil {
		return err
	}

	desired := make(map[string]bool, len(desiredIDs))
	for _, id := range desiredIDs {
		desired[id] = true
	}
	linked := make(map[string]bool, len(current))
	for _, link := range current {
		linked[link.TargetID] = true
		if !desired[link.TargetID] {
			if err := m.Unlink(link.LinkID); err != nil {
				return err
			}
		}
	}
	for _, id := range desiredIDs {
		if linked[id] {
			continue
		}
		target := types.EntityRef{Type: targetType, ID: id}
		if _, err := m.Link(source, target, linkType, nil); err != nil {
			return err
		}
	}
	return nil
}

// SyncAsTarget is Sync for the inbound direction: it reconciles the
// edges pointing at target from sources of the given type.
func (m *Manager) SyncAsTarget(target types.EntityRef, sourceType, linkType string, desiredIDs []string) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !types.ValidEntityType(sourceType) {
		return types.ErrInvalidData
	}
	if !types.ValidLinkType(linkType) {
		return types.ErrInvalidData
	}

	current, err := m.Inbound(target, sourceType, linkType)
	if err != nil {
		return err
	}

	desired := make(map[string]bool, len(desiredIDs))
	for _, id := range desiredIDs {
		desired[id] = true
	}
	linked := make(map[string]bool, len(current))
	for _, link := range current {
		linked[link.SourceID] = true
		if !desired[link.SourceID] {
			if err := m.Unlink(link.LinkID); err != nil {
				return err
			}
		}
	}
	for _, id := range desiredIDs {
		if linked[id] {
			continue
		}
		source := types.EntityRef{Type: sourceType, ID: id}
		if _, err := m.Link(source, target, linkType, nil); err != nil {
			return err
		}
	}
	return nil
}

// Promote persists pending links composed before the source entity
// existed, with source as the edge source.
func (m *Manager) Promote(source types.EntityRef, pending []types.PendingLink) error {
	for _, p := range pending {
		target := types.EntityRef{Type: p.TargetType, ID: p.TargetID}
		if _, err := m.Link(source, target, p.LinkType, p.Position); err != nil {
			return fmt.Errorf("promoting pending link to %s/%s: %w", p.TargetType, p.TargetID, err)
		}
	}
	return nil
}

// Relationships groups every edge touching ref into the given slots.
// Two queries fetch the edges (ref as source, ref as target); the
// grouping happens here because the polymorphic edge table cannot
// express it in SQL. Links matching no slot are omitted.
func (m *Manager) Relationships(ref types.EntityRef, slots []types.Slot) (map[string][]*types.Link, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	outbound, err := m.fetch(types.Filter{"source_type": ref.Type, "source_id": ref.ID})
	if err != nil {
		return nil, err
	}
	inbound, err := m.fetch(types.Filter{"target_type": ref.Type, "target_id": ref.ID})
	if err != nil {
		return nil, err
	}

	result := make(map[string][]*types.Link, len(slots))
	for _, slot := range slots {
		var matched []*types.Link
		switch slot.Direction {
		case types.DirectionOutbound:
			for _, link := range outbound {
				if link.LinkType == slot.LinkType && link.TargetType == slot.EntityType {
					matched = append(matched, link)
				}
			}
		case types.DirectionInbound:
			for _, link := range inbound {
				if link.LinkType == slot.LinkType && link.SourceType == slot.EntityType {
					matched = append(matched, link)
				}
			}
		}
		if slot.Ordered {
			sortByPosition(matched)
		}
		result[slot.Name] = matched
	}
	return result, nil
}

// fetch selects links and hydrates them, sorted by creation time.
func (m *Manager) fetch(filter types.Filter) ([]*types.Link, error) {
	rows, err := m.store.Select(types.TableLinks, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrDatabase, err)
	}
	links := make([]*types.Link, 0, len(rows))
	for _, row := range rows {
		link, err := hydrateLink(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrDatabase, err)
		}
		links = append(links, link)
	}
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].CreatedAt.Before(links[j].CreatedAt)
	})
	return links, nil
}

// sortByPosition orders links by Position; links without a position sort
// after positioned ones, keeping their creation order.
func sortByPosition(links []*types.Link) {
	sort.SliceStable(links, func(i, j int) bool {
		pi, pj := links[i].Position, links[j].Position
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return *pi < *pj
		}
	})
}

// dehydrateLink converts a Link to a storage row.
func dehydrateLink(l *types.Link) types.Row {
	row := types.Row{
		"link_id":     l.LinkID,
		"link_type":   l.LinkType,
		"source_type": l.SourceType,
		"source_id":   l.SourceID,
		"target_type": l.TargetType,
		"target_id":   l.TargetID,
		"position":    nil,
		"created_at":  l.CreatedAt.Format(time.RFC3339),
	}
	if l.Position != nil {
		row["position"] = int64(*l.Position)
	}
	return row
}

// hydrateLink converts a storage row to a Link.
func hydrateLink(row types.Row) (*types.Link, error) {
	l := &types.Link{
		LinkID:     asString(row["link_id"]),
		LinkType:   asString(row["link_type"]),
		SourceType: asString(row["source_type"]),
		SourceID:   asString(row["source_id"]),
		TargetType: asString(row["target_type"]),
		TargetID:   asString(row["target_id"]),
	}
	switch p := row["position"].(type) {
	case int64:
		pos := int(p)
		l.Position = &pos
	case int:
		pos := p
		l.Position = &pos
	case float64:
		pos := int(p)
		l.Position = &pos
	}
	var err error
	l.CreatedAt, err = time.Parse(time.RFC3339, asString(row["created_at"]))
	if err != nil {
		return nil, fmt.Errorf("parsing link created_at: %w", err)
	}
	return l, nil
}

// asString returns v as a string, or "" for any other type.
func asString(v any) string {
	s, _ := v.(string)
	return s
}
