// Export command writes a JSONL snapshot of the database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export all tables to JSONL snapshot files",
	Long: `Export writes one <table>.jsonl file per table into the given
directory, creating it if needed. Exports are deterministic so snapshots
diff cleanly under version control.

Example:
  atelier export ./snapshot`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Export(args[0]); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	fmt.Printf("Exported snapshot to %s\n", args[0])
	return nil
}
