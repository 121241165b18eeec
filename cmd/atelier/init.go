// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and storage",
	Long: `Init creates the configuration directory with a default config.yaml
and initializes the data directory with an empty database.

Example:
  atelier init
  atelier init --data-dir ./studio-data`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml were created by PersistentPreRunE.
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	fmt.Printf("Initialized atelier\n  config: %s\n  data:   %s\n", configDir, dataDir)
	return nil
}
