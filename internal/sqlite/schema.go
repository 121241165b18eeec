package sqlite

// Schema DDL for all tables. Canvas blocks carry the JSON column plus the
// integer version the optimistic lock compares against; everything else
// is plain TEXT. The stub entity tables exist so link edges have real
// rows to point at.
const (
	createCanvases = `CREATE TABLE IF NOT EXISTS canvases (
    canvas_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    kind TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createCanvasBlocks = `CREATE TABLE IF NOT EXISTS canvas_blocks (
    canvas_id TEXT NOT NULL,
    block_name TEXT NOT NULL,
    data TEXT NOT NULL,
    version INTEGER NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (canvas_id, block_name)
);`

	createLinks = `CREATE TABLE IF NOT EXISTS links (
    link_id TEXT PRIMARY KEY,
    link_type TEXT NOT NULL,
    source_type TEXT NOT NULL,
    source_id TEXT NOT NULL,
    target_type TEXT NOT NULL,
    target_id TEXT NOT NULL,
    position INTEGER,
    created_at TEXT NOT NULL
);`

	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    project_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    data TEXT,
    owner_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createVentures = `CREATE TABLE IF NOT EXISTS ventures (
    venture_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    data TEXT,
    owner_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createStories = `CREATE TABLE IF NOT EXISTS stories (
    story_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    data TEXT,
    owner_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createActivities = `CREATE TABLE IF NOT EXISTS activities (
    activity_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    data TEXT,
    owner_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createLayers = `CREATE TABLE IF NOT EXISTS layers (
    layer_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    data TEXT,
    owner_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createLogEntries = `CREATE TABLE IF NOT EXISTS log_entries (
    log_entry_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    data TEXT,
    owner_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxCanvasesOwner  = `CREATE INDEX IF NOT EXISTS idx_canvases_owner ON canvases(owner_id);`
	idxCanvasesKind   = `CREATE INDEX IF NOT EXISTS idx_canvases_kind ON canvases(kind);`
	idxLinksSource    = `CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_type, source_id);`
	idxLinksTarget    = `CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_type, target_id);`
	idxLinksType      = `CREATE INDEX IF NOT EXISTS idx_links_type ON links(link_type);`
	idxBlocksCanvas   = `CREATE INDEX IF NOT EXISTS idx_canvas_blocks_canvas ON canvas_blocks(canvas_id);`
	idxProjectsOwner  = `CREATE INDEX IF NOT EXISTS idx_projects_owner ON projects(owner_id);`
	idxVenturesOwner  = `CREATE INDEX IF NOT EXISTS idx_ventures_owner ON ventures(owner_id);`
	idxStoriesOwner   = `CREATE INDEX IF NOT EXISTS idx_stories_owner ON stories(owner_id);`
	idxActivitiesOwn  = `CREATE INDEX IF NOT EXISTS idx_activities_owner ON activities(owner_id);`
	idxLayersOwner    = `CREATE INDEX IF NOT EXISTS idx_layers_owner ON layers(owner_id);`
	idxLogEntriesOwn  = `CREATE INDEX IF NOT EXISTS idx_log_entries_owner ON log_entries(owner_id);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createCanvases,
	createCanvasBlocks,
	createLinks,
	createProjects,
	createVentures,
	createStories,
	createActivities,
	createLayers,
	createLogEntries,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCanvasesOwner,
	idxCanvasesKind,
	idxLinksSource,
	idxLinksTarget,
	idxLinksType,
	idxBlocksCanvas,
	idxProjectsOwner,
	idxVenturesOwner,
	idxStoriesOwner,
	idxActivitiesOwn,
	idxLayersOwner,
	idxLogEntriesOwn,
}

// stubColumns is the shared column list of the linkable stub tables.
func stubColumns(idCol string) []string {
	return []string{idCol, "name", "data", "owner_id", "created_at", "updated_at"}
}

// tableColumns is the column allow-list per table, in SELECT order. Filter
// and patch keys are checked against this before any SQL is built, so
// column names never come from caller data.
var tableColumns = map[string][]string{
	"canvases":      {"canvas_id", "name", "kind", "owner_id", "created_at", "updated_at"},
	"canvas_blocks": {"canvas_id", "block_name", "data", "version", "updated_at"},
	"links":         {"link_id", "link_type", "source_type", "source_id", "target_type", "target_id", "position", "created_at"},
	"projects":      stubColumns("project_id"),
	"ventures":      stubColumns("venture_id"),
	"stories":       stubColumns("story_id"),
	"activities":    stubColumns("activity_id"),
	"layers":        stubColumns("layer_id"),
	"log_entries":   stubColumns("log_entry_id"),
}

// snapshotTables lists the tables included in JSONL snapshots, in a fixed
// order so exports diff cleanly.
var snapshotTables = []string{
	"canvases",
	"canvas_blocks",
	"links",
	"projects",
	"ventures",
	"stories",
	"activities",
	"layers",
	"log_entries",
}
