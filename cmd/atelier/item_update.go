// Item update command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friisj/atelier/pkg/types"
)

var (
	itemUpdateContent       string
	itemUpdateEvidence      string
	itemUpdateType          string
	itemUpdateEffectiveness string
)

var itemUpdateCmd = &cobra.Command{
	Use:   "update <canvas-id> <block> <item-id>",
	Short: "Update fields of an existing item",
	Long: `Update replaces the given fields of an item. Flags not passed leave
the field untouched; the identifier and position never change.

Example:
  atelier item update CANVAS pains ITEM --content "Checkout takes 4 minutes"`,
	Args: cobra.ExactArgs(3),
	RunE: runItemUpdate,
}

func init() {
	itemUpdateCmd.Flags().StringVar(&itemUpdateContent, "content", "", "new content")
	itemUpdateCmd.Flags().StringVar(&itemUpdateEvidence, "evidence", "", "new evidence")
	itemUpdateCmd.Flags().StringVar(&itemUpdateType, "type", "", "new type: product or service")
	itemUpdateCmd.Flags().StringVar(&itemUpdateEffectiveness, "effectiveness", "", "new effectiveness: low, medium, or high")
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	var patch types.ItemPatch
	if cmd.Flags().Changed("content") {
		patch.Content = &itemUpdateContent
	}
	if cmd.Flags().Changed("evidence") {
		patch.Evidence = &itemUpdateEvidence
	}
	if cmd.Flags().Changed("type") {
		patch.Type = &itemUpdateType
	}
	if cmd.Flags().Changed("effectiveness") {
		patch.Effectiveness = &itemUpdateEffectiveness
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	item, err := newService(store).UpdateItem(args[0], args[1], args[2], patch)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Updated item: %s\n", item.ItemID)
	return nil
}
