// Shared helpers for atelier CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/friisj/atelier/internal/canvas"
	"github.com/friisj/atelier/internal/session"
	"github.com/friisj/atelier/internal/sqlite"
	"github.com/friisj/atelier/pkg/types"
)

// attachStore resolves the data directory, creates a SQLite store, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
		User:    currentUser(),
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// newService wraps an attached store in a canvas service bound to the
// acting user. The CLI has no rendered views, so no revalidator.
func newService(store *sqlite.Store) *canvas.Service {
	return canvas.NewService(store, session.Static{UserID: currentUser()}, nil)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// parseRef parses a "type:id" entity reference argument.
func parseRef(arg string) (types.EntityRef, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return types.EntityRef{}, fmt.Errorf("invalid reference %q (expected type:id)", arg)
	}
	ref := types.EntityRef{Type: parts[0], ID: parts[1]}
	if err := ref.Validate(); err != nil {
		return types.EntityRef{}, fmt.Errorf("invalid reference %q: %w", arg, err)
	}
	return ref, nil
}
