// Item delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <canvas-id> <block> <item-id>",
	Short: "Delete an item from a canvas block",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemDelete,
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := newService(store).DeleteItem(args[0], args[1], args[2]); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	fmt.Printf("Deleted item: %s\n", args[2])
	return nil
}
