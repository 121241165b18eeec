// Canvas create command.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/friisj/atelier/pkg/types"
)

var (
	canvasCreateName  string
	canvasCreateKind  string
	canvasCreateLinks []string
)

var canvasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new canvas",
	Long: `Create makes a new canvas of the given kind with empty blocks.

Links composed while drafting can be attached at creation time with
--link, given as link_type:target_type:target_id.

Example:
  atelier canvas create --name "Checkout value map" --kind value_map
  atelier canvas create --name "Onboarding" --kind story_map --link belongs_to:project:p1`,
	RunE: runCanvasCreate,
}

func init() {
	canvasCreateCmd.Flags().StringVar(&canvasCreateName, "name", "", "name for the canvas (required)")
	canvasCreateCmd.Flags().StringVar(&canvasCreateKind, "kind", "", "canvas kind: value_map or story_map (required)")
	canvasCreateCmd.Flags().StringArrayVar(&canvasCreateLinks, "link", nil, "pending link as link_type:target_type:target_id (repeatable)")
	_ = canvasCreateCmd.MarkFlagRequired("name")
	_ = canvasCreateCmd.MarkFlagRequired("kind")
}

func runCanvasCreate(cmd *cobra.Command, args []string) error {
	pending, err := parsePendingLinks(canvasCreateLinks)
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	c, err := newService(store).CreateCanvas(canvasCreateName, canvasCreateKind, pending)
	if err != nil {
		return fmt.Errorf("create canvas: %w", err)
	}

	if flagJSON {
		return printJSON(c)
	}
	fmt.Printf("Created canvas: %s\n", c.CanvasID)
	return nil
}

// parsePendingLinks parses repeated --link values.
func parsePendingLinks(specs []string) ([]types.PendingLink, error) {
	pending := make([]types.PendingLink, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid link %q (expected link_type:target_type:target_id)", spec)
		}
		pending = append(pending, types.PendingLink{
			LinkType:   parts[0],
			TargetType: parts[1],
			TargetID:   parts[2],
		})
	}
	return pending, nil
}
