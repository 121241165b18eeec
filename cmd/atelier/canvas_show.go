// Canvas show command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var canvasShowCmd = &cobra.Command{
	Use:   "show <canvas-id>",
	Short: "Show a canvas with all its blocks",
	Args:  cobra.ExactArgs(1),
	RunE:  runCanvasShow,
}

func runCanvasShow(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	c, err := newService(store).GetCanvas(args[0])
	if err != nil {
		return fmt.Errorf("get canvas: %w", err)
	}

	if flagJSON {
		return printJSON(c)
	}
	fmt.Printf("%s (%s) owned by %s\n", c.Name, c.Kind, c.OwnerID)
	for name, block := range c.Blocks {
		fmt.Printf("  %s: %d items\n", name, len(block.Items))
		for _, item := range block.Items {
			fmt.Printf("    - [%s] %s\n", item.ItemID, item.Content)
		}
	}
	return nil
}
