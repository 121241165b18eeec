// Link remove command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var linkRemoveCmd = &cobra.Command{
	Use:   "remove <link-id>",
	Short: "Remove a link by its identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkRemove,
}

func runLinkRemove(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := newService(store).Links().Unlink(args[0]); err != nil {
		return fmt.Errorf("remove link: %w", err)
	}
	fmt.Printf("Removed link: %s\n", args[0])
	return nil
}
