// Canvas delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var canvasDeleteCmd = &cobra.Command{
	Use:   "delete <canvas-id>",
	Short: "Delete a canvas, its blocks, and every link touching it",
	Args:  cobra.ExactArgs(1),
	RunE:  runCanvasDelete,
}

func runCanvasDelete(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := newService(store).DeleteCanvas(args[0]); err != nil {
		return fmt.Errorf("delete canvas: %w", err)
	}
	fmt.Printf("Deleted canvas: %s\n", args[0])
	return nil
}
