// Link add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	linkAddType     string
	linkAddPosition int
)

var linkAddCmd = &cobra.Command{
	Use:   "add <source-type:id> <target-type:id>",
	Short: "Create a directed link between two entities",
	Long: `Add inserts one directed edge from source to target. No duplicate
check is performed; use sync to reconcile a whole edge set.

Example:
  atelier link add canvas:CANVAS project:p1 --type belongs_to
  atelier link add canvas:CANVAS story:s1 --type references --position 2`,
	Args: cobra.ExactArgs(2),
	RunE: runLinkAdd,
}

func init() {
	linkAddCmd.Flags().StringVar(&linkAddType, "type", "", "link type (required)")
	linkAddCmd.Flags().IntVar(&linkAddPosition, "position", -1, "ordinal position within the target's slot")
	_ = linkAddCmd.MarkFlagRequired("type")
}

func runLinkAdd(cmd *cobra.Command, args []string) error {
	source, err := parseRef(args[0])
	if err != nil {
		return err
	}
	target, err := parseRef(args[1])
	if err != nil {
		return err
	}
	var position *int
	if cmd.Flags().Changed("position") {
		position = &linkAddPosition
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	link, err := newService(store).Links().Link(source, target, linkAddType, position)
	if err != nil {
		return fmt.Errorf("add link: %w", err)
	}

	if flagJSON {
		return printJSON(link)
	}
	fmt.Printf("Created link: %s\n", link.LinkID)
	return nil
}
