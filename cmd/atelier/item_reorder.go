// Item reorder command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemReorderCmd = &cobra.Command{
	Use:   "reorder <canvas-id> <block> <item-id>...",
	Short: "Reorder the items of a canvas block",
	Long: `Reorder rebuilds the block's items in the order the identifiers are
given. Items omitted from the list keep their relative order after the
reordered ones; unknown identifiers are ignored.

Example:
  atelier item reorder CANVAS pains ITEM3 ITEM1 ITEM2`,
	Args: cobra.MinimumNArgs(3),
	RunE: runItemReorder,
}

func runItemReorder(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := newService(store).ReorderItems(args[0], args[1], args[2:]); err != nil {
		return fmt.Errorf("reorder items: %w", err)
	}
	fmt.Println("Reordered items")
	return nil
}
