package linkgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friisj/atelier/internal/linkgraph"
	"github.com/friisj/atelier/internal/sqlite"
	"github.com/friisj/atelier/pkg/types"
)

func newTestManager(t *testing.T) *linkgraph.Manager {
	t.Helper()
	store := sqlite.NewStore()
	err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Detach() })
	return linkgraph.NewManager(store)
}

func ref(entityType, id string) types.EntityRef {
	return types.EntityRef{Type: entityType, ID: id}
}

func TestLinkAndQueries(t *testing.T) {
	m := newTestManager(t)
	canvas := ref(types.EntityCanvas, "c1")
	project := ref(types.EntityProject, "p1")

	link, err := m.Link(canvas, project, types.LinkTypeBelongsTo, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, link.LinkID)
	assert.Equal(t, types.EntityCanvas, link.SourceType)
	assert.Equal(t, "p1", link.TargetID)

	out, err := m.Outbound(canvas, "", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, link.LinkID, out[0].LinkID)

	in, err := m.Inbound(project, "", "")
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, link.LinkID, in[0].LinkID)
}

func TestLinkValidation(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Link(ref(types.EntityCanvas, ""), ref(types.EntityProject, "p1"), types.LinkTypeRelatesTo, nil)
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = m.Link(ref("widget", "w1"), ref(types.EntityProject, "p1"), types.LinkTypeRelatesTo, nil)
	assert.ErrorIs(t, err, types.ErrInvalidData)

	_, err = m.Link(ref(types.EntityCanvas, "c1"), ref(types.EntityProject, "p1"), "married_to", nil)
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestLinkAllowsDuplicateEdges(t *testing.T) {
	m := newTestManager(t)
	canvas := ref(types.EntityCanvas, "c1")
	project := ref(types.EntityProject, "p1")

	_, err := m.Link(canvas, project, types.LinkTypeRelatesTo, nil)
	require.NoError(t, err)
	_, err = m.Link(canvas, project, types.LinkTypeRelatesTo, nil)
	require.NoError(t, err)

	out, err := m.Outbound(canvas, "", "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestUnlinkIsIdempotent(t *testing.T) {
	m := newTestManager(t)
	link, err := m.Link(ref(types.EntityCanvas, "c1"), ref(types.EntityProject, "p1"), types.LinkTypeRelatesTo, nil)
	require.NoError(t, err)

	require.NoError(t, m.Unlink(link.LinkID))
	require.NoError(t, m.Unlink(link.LinkID))
	assert.ErrorIs(t, m.Unlink(""), types.ErrInvalidID)
}

func TestOutboundNarrowing(t *testing.T) {
	m := newTestManager(t)
	canvas := ref(types.EntityCanvas, "c1")

	_, err := m.Link(canvas, ref(types.EntityProject, "p1"), types.LinkTypeBelongsTo, nil)
	require.NoError(t, err)
	_, err = m.Link(canvas, ref(types.EntityStory, "s1"), types.LinkTypeReferences, nil)
	require.NoError(t, err)

	projects, err := m.Outbound(canvas, types.EntityProject, "")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].TargetID)

	refs, err := m.Outbound(canvas, "", types.LinkTypeReferences)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "s1", refs[0].TargetID)
}

func TestSyncReconcilesEdgeSet(t *testing.T) {
	m := newTestManager(t)
	canvas := ref(types.EntityCanvas, "c1")

	require.NoError(t, m.Sync(canvas, types.EntityProject, types.LinkTypeBelongsTo, []string{"p1", "p2"}))

	out, err := m.Outbound(canvas, types.EntityProject, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	require.Len(t, out, 2)
	kept := out[0].LinkID

	// Keep p1, drop p2, add p3.
	require.NoError(t, m.Sync(canvas, types.EntityProject, types.LinkTypeBelongsTo, []string{"p1", "p3"}))

	out, err = m.Outbound(canvas, types.EntityProject, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	require.Len(t, out, 2)
	targets := []string{out[0].TargetID, out[1].TargetID}
	assert.ElementsMatch(t, []string{"p1", "p3"}, targets)

	// The surviving p1 edge kept its identity rather than being recreated.
	found := false
	for _, l := range out {
		if l.LinkID == kept {
			found = true
		}
	}
	assert.True(t, found, "existing edge should survive sync")
}

func TestSyncEmptySetClearsEdges(t *testing.T) {
	m := newTestManager(t)
	canvas := ref(types.EntityCanvas, "c1")

	require.NoError(t, m.Sync(canvas, types.EntityProject, types.LinkTypeBelongsTo, []string{"p1"}))
	require.NoError(t, m.Sync(canvas, types.EntityProject, types.LinkTypeBelongsTo, nil))

	out, err := m.Outbound(canvas, types.EntityProject, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSyncLeavesOtherTypesAlone(t *testing.T) {
	m := newTestManager(t)
	canvas := ref(types.EntityCanvas, "c1")

	_, err := m.Link(canvas, ref(types.EntityStory, "s1"), types.LinkTypeReferences, nil)
	require.NoError(t, err)

	require.NoError(t, m.Sync(canvas, types.EntityProject, types.LinkTypeBelongsTo, []string{"p1"}))

	stories, err := m.Outbound(canvas, types.EntityStory, "")
	require.NoError(t, err)
	assert.Len(t, stories, 1)
}

func TestSyncAsTarget(t *testing.T) {
	m := newTestManager(t)
	project := ref(types.EntityProject, "p1")

	require.NoError(t, m.SyncAsTarget(project, types.EntityCanvas, types.LinkTypeBelongsTo, []string{"c1", "c2"}))

	in, err := m.Inbound(project, types.EntityCanvas, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	require.Len(t, in, 2)

	require.NoError(t, m.SyncAsTarget(project, types.EntityCanvas, types.LinkTypeBelongsTo, []string{"c2"}))
	in, err = m.Inbound(project, types.EntityCanvas, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, "c2", in[0].SourceID)
}

func TestPromotePendingLinks(t *testing.T) {
	m := newTestManager(t)
	pos := 2
	canvas := ref(types.EntityCanvas, "c1")

	err := m.Promote(canvas, []types.PendingLink{
		{TargetType: types.EntityProject, TargetID: "p1", LinkType: types.LinkTypeBelongsTo},
		{TargetType: types.EntityStory, TargetID: "s1", LinkType: types.LinkTypeReferences, Position: &pos},
	})
	require.NoError(t, err)

	out, err := m.Outbound(canvas, "", "")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Position)
	assert.Equal(t, 2, *out[1].Position)
}

func TestRelationshipsGroupsBySlot(t *testing.T) {
	m := newTestManager(t)
	canvas := ref(types.EntityCanvas, "c1")

	p0, p1 := 0, 1
	_, err := m.Link(canvas, ref(types.EntityStory, "s-second"), types.LinkTypeReferences, &p1)
	require.NoError(t, err)
	_, err = m.Link(canvas, ref(types.EntityStory, "s-first"), types.LinkTypeReferences, &p0)
	require.NoError(t, err)
	_, err = m.Link(canvas, ref(types.EntityStory, "s-unpositioned"), types.LinkTypeReferences, nil)
	require.NoError(t, err)
	_, err = m.Link(ref(types.EntityLayer, "l1"), canvas, types.LinkTypeDerivedFrom, nil)
	require.NoError(t, err)

	slots := []types.Slot{
		{Name: "stories", EntityType: types.EntityStory, LinkType: types.LinkTypeReferences, Direction: types.DirectionOutbound, Ordered: true},
		{Name: "derived", EntityType: types.EntityLayer, LinkType: types.LinkTypeDerivedFrom, Direction: types.DirectionInbound},
		{Name: "projects", EntityType: types.EntityProject, LinkType: types.LinkTypeBelongsTo, Direction: types.DirectionOutbound},
	}
	rels, err := m.Relationships(canvas, slots)
	require.NoError(t, err)

	stories := rels["stories"]
	require.Len(t, stories, 3)
	assert.Equal(t, "s-first", stories[0].TargetID)
	assert.Equal(t, "s-second", stories[1].TargetID)
	// Positionless links sort last.
	assert.Equal(t, "s-unpositioned", stories[2].TargetID)

	require.Len(t, rels["derived"], 1)
	assert.Equal(t, "l1", rels["derived"][0].SourceID)

	assert.Empty(t, rels["projects"])
}
