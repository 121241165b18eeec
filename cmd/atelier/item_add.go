// Item add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friisj/atelier/internal/canvas"
)

var (
	itemAddContent       string
	itemAddEvidence      string
	itemAddType          string
	itemAddEffectiveness string
	itemAddLinkedPain    string
	itemAddLinkedGain    string
)

var itemAddCmd = &cobra.Command{
	Use:   "add <canvas-id> <block>",
	Short: "Add an item to a canvas block",
	Long: `Add appends a new item to the named block. The item identifier is
minted by the service.

Example:
  atelier item add CANVAS pains --content "Checkout takes too long"
  atelier item add CANVAS products_services --content "Express lane" --type service`,
	Args: cobra.ExactArgs(2),
	RunE: runItemAdd,
}

func init() {
	itemAddCmd.Flags().StringVar(&itemAddContent, "content", "", "item content (required)")
	itemAddCmd.Flags().StringVar(&itemAddEvidence, "evidence", "", "supporting evidence")
	itemAddCmd.Flags().StringVar(&itemAddType, "type", "", "item type: product or service")
	itemAddCmd.Flags().StringVar(&itemAddEffectiveness, "effectiveness", "", "effectiveness: low, medium, or high")
	itemAddCmd.Flags().StringVar(&itemAddLinkedPain, "linked-pain", "", "linked pain item identifier")
	itemAddCmd.Flags().StringVar(&itemAddLinkedGain, "linked-gain", "", "linked gain item identifier")
	_ = itemAddCmd.MarkFlagRequired("content")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	item, err := newService(store).AddItem(args[0], args[1], canvas.ItemInput{
		Content:       itemAddContent,
		Evidence:      itemAddEvidence,
		Type:          itemAddType,
		Effectiveness: itemAddEffectiveness,
		LinkedPainID:  itemAddLinkedPain,
		LinkedGainID:  itemAddLinkedGain,
	})
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Added item: %s\n", item.ItemID)
	return nil
}
