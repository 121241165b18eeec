// Workflow integration tests drive the library packages directly through
// full multi-step scenarios: several editors over one store, reattach
// after detach, and snapshot transfer between stores.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friisj/atelier/internal/canvas"
	"github.com/friisj/atelier/internal/session"
	"github.com/friisj/atelier/internal/sqlite"
	"github.com/friisj/atelier/pkg/types"
)

// newWorkflowStore creates a store attached to an isolated data directory.
func newWorkflowStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	dataDir := t.TempDir()
	store := sqlite.NewStore()
	err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.NoError(t, err, "Attach must succeed")
	t.Cleanup(func() { _ = store.Detach() })
	return store, dataDir
}

// serviceFor binds a service for the given user over a shared store.
func serviceFor(store *sqlite.Store, user string) *canvas.Service {
	return canvas.NewService(store, session.Static{UserID: user}, nil)
}

func TestWorkflow_AddThenReadAcrossSessions(t *testing.T) {
	store, _ := newWorkflowStore(t)
	editor := serviceFor(store, "editor")
	reader := serviceFor(store, "reader")

	created, err := editor.CreateCanvas("Shared canvas", types.KindValueMap, nil)
	require.NoError(t, err)

	added, err := editor.AddItem(created.CanvasID, types.BlockPains, canvas.ItemInput{
		Content:  "Forms lose state on refresh",
		Evidence: "Support tickets #12 and #40",
	})
	require.NoError(t, err)

	got, err := reader.GetCanvas(created.CanvasID)
	require.NoError(t, err)
	pains := got.Blocks[types.BlockPains]
	require.Len(t, pains.Items, 1)
	assert.Equal(t, added.ItemID, pains.Items[0].ItemID)
	assert.Equal(t, "Forms lose state on refresh", pains.Items[0].Content)
	assert.Equal(t, "Support tickets #12 and #40", pains.Items[0].Evidence)
}

func TestWorkflow_ConcurrentEditConflictAndRetry(t *testing.T) {
	store, _ := newWorkflowStore(t)
	alice := serviceFor(store, "alice")
	bob := serviceFor(store, "bob")

	created, err := alice.CreateCanvas("Contested canvas", types.KindValueMap, nil)
	require.NoError(t, err)

	// Both editors observe the same block version.
	aliceBlock, aliceVersion, err := alice.ReadBlock(created.CanvasID, types.BlockGains)
	require.NoError(t, err)
	bobBlock, bobVersion, err := bob.ReadBlock(created.CanvasID, types.BlockGains)
	require.NoError(t, err)
	require.Equal(t, aliceVersion, bobVersion)

	aliceBlock.Items = append(aliceBlock.Items, types.Item{ItemID: "g-alice", Content: "faster checkout"})
	require.NoError(t, alice.WriteBlock(created.CanvasID, types.BlockGains, aliceBlock, aliceVersion))

	// Bob's write lands second and must lose without clobbering Alice's.
	bobBlock.Items = append(bobBlock.Items, types.Item{ItemID: "g-bob", Content: "fewer clicks"})
	err = bob.WriteBlock(created.CanvasID, types.BlockGains, bobBlock, bobVersion)
	require.ErrorIs(t, err, types.ErrConflict)

	// Retry from a fresh read succeeds and preserves both edits.
	fresh, freshVersion, err := bob.ReadBlock(created.CanvasID, types.BlockGains)
	require.NoError(t, err)
	assert.Greater(t, freshVersion, bobVersion)
	fresh.Items = append(fresh.Items, types.Item{ItemID: "g-bob", Content: "fewer clicks"})
	require.NoError(t, bob.WriteBlock(created.CanvasID, types.BlockGains, fresh, freshVersion))

	final, _, err := alice.ReadBlock(created.CanvasID, types.BlockGains)
	require.NoError(t, err)
	assert.Equal(t, []string{"g-alice", "g-bob"}, final.ItemIDs())
}

func TestWorkflow_IndependentBlocksNeverConflict(t *testing.T) {
	store, _ := newWorkflowStore(t)
	alice := serviceFor(store, "alice")
	bob := serviceFor(store, "bob")

	created, err := alice.CreateCanvas("Split work", types.KindValueMap, nil)
	require.NoError(t, err)

	_, err = alice.AddItem(created.CanvasID, types.BlockPains, canvas.ItemInput{Content: "slow load"})
	require.NoError(t, err)
	_, err = bob.AddItem(created.CanvasID, types.BlockGains, canvas.ItemInput{Content: "quick wins"})
	require.NoError(t, err)

	got, err := alice.GetCanvas(created.CanvasID)
	require.NoError(t, err)
	assert.Len(t, got.Blocks[types.BlockPains].Items, 1)
	assert.Len(t, got.Blocks[types.BlockGains].Items, 1)
}

func TestWorkflow_ReorderSurvivesReattach(t *testing.T) {
	store, dataDir := newWorkflowStore(t)
	editor := serviceFor(store, "editor")

	created, err := editor.CreateCanvas("Persistent order", types.KindStoryMap, nil)
	require.NoError(t, err)

	items, err := editor.AddItems(created.CanvasID, types.BlockStories, []canvas.ItemInput{
		{Content: "login"},
		{Content: "browse"},
		{Content: "checkout"},
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	reversed := []string{items[2].ItemID, items[1].ItemID, items[0].ItemID}
	require.NoError(t, editor.ReorderItems(created.CanvasID, types.BlockStories, reversed))
	require.NoError(t, store.Detach())

	reopened := sqlite.NewStore()
	err = reopened.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.NoError(t, err)
	defer reopened.Detach()

	got, err := serviceFor(reopened, "editor").GetCanvas(created.CanvasID)
	require.NoError(t, err)
	assert.Equal(t, reversed, got.Blocks[types.BlockStories].ItemIDs())
}

func TestWorkflow_LinkSyncKeepsSurvivingEdges(t *testing.T) {
	store, _ := newWorkflowStore(t)
	editor := serviceFor(store, "editor")

	created, err := editor.CreateCanvas("Linked canvas", types.KindValueMap, nil)
	require.NoError(t, err)
	source := types.EntityRef{Type: types.EntityCanvas, ID: created.CanvasID}
	links := editor.Links()

	require.NoError(t, links.Sync(source, types.EntityProject, types.LinkTypeBelongsTo, []string{"p1", "p2"}))
	before, err := links.Outbound(source, types.EntityProject, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	require.Len(t, before, 2)

	kept := map[string]string{}
	for _, l := range before {
		kept[l.TargetID] = l.LinkID
	}

	require.NoError(t, links.Sync(source, types.EntityProject, types.LinkTypeBelongsTo, []string{"p2", "p3"}))
	after, err := links.Outbound(source, types.EntityProject, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	require.Len(t, after, 2)

	targets := map[string]string{}
	for _, l := range after {
		targets[l.TargetID] = l.LinkID
	}
	assert.NotContains(t, targets, "p1")
	assert.Contains(t, targets, "p3")
	assert.Equal(t, kept["p2"], targets["p2"], "surviving edge must keep its identity")
}

func TestWorkflow_DeleteCanvasClearsEdgesBothWays(t *testing.T) {
	store, _ := newWorkflowStore(t)
	editor := serviceFor(store, "editor")

	created, err := editor.CreateCanvas("Doomed canvas", types.KindValueMap, nil)
	require.NoError(t, err)
	ref := types.EntityRef{Type: types.EntityCanvas, ID: created.CanvasID}
	links := editor.Links()

	_, err = links.Link(ref, types.EntityRef{Type: types.EntityProject, ID: "p1"}, types.LinkTypeBelongsTo, nil)
	require.NoError(t, err)
	_, err = links.Link(types.EntityRef{Type: types.EntityLogEntry, ID: "log1"}, ref, types.LinkTypeReferences, nil)
	require.NoError(t, err)

	require.NoError(t, editor.DeleteCanvas(created.CanvasID))

	rows, err := store.Select(types.TableLinks, types.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rows, "deletion must clear edges in both directions")
}

func TestWorkflow_SnapshotTransfersToFreshStore(t *testing.T) {
	source, _ := newWorkflowStore(t)
	editor := serviceFor(source, "editor")

	created, err := editor.CreateCanvas("Exported canvas", types.KindValueMap, []types.PendingLink{
		{TargetType: types.EntityProject, TargetID: "p1", LinkType: types.LinkTypeBelongsTo},
	})
	require.NoError(t, err)
	_, err = editor.AddItem(created.CanvasID, types.BlockPains, canvas.ItemInput{Content: "manual backups"})
	require.NoError(t, err)

	snapDir := t.TempDir()
	require.NoError(t, source.Export(snapDir))

	dest, _ := newWorkflowStore(t)
	require.NoError(t, dest.Import(snapDir))

	got, err := serviceFor(dest, "editor").GetCanvas(created.CanvasID)
	require.NoError(t, err)
	assert.Equal(t, "Exported canvas", got.Name)
	require.Len(t, got.Blocks[types.BlockPains].Items, 1)
	assert.Equal(t, "manual backups", got.Blocks[types.BlockPains].Items[0].Content)

	ref := types.EntityRef{Type: types.EntityCanvas, ID: created.CanvasID}
	outbound, err := serviceFor(dest, "editor").Links().Outbound(ref, types.EntityProject, types.LinkTypeBelongsTo)
	require.NoError(t, err)
	require.Len(t, outbound, 1)
	assert.Equal(t, "p1", outbound[0].TargetID)
}
