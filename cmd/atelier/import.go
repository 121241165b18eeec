// Import command loads a JSONL snapshot into the database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Replace table contents from JSONL snapshot files",
	Long: `Import replaces the contents of every table with the records found
in the given directory. Tables with no snapshot file are left untouched.

Example:
  atelier import ./snapshot`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Import(args[0]); err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}
	fmt.Printf("Imported snapshot from %s\n", args[0])
	return nil
}
