// Link list command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friisj/atelier/pkg/types"
)

var linkListCmd = &cobra.Command{
	Use:   "list <entity-type:id>",
	Short: "List every link touching an entity",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkList,
}

func runLinkList(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	links := newService(store).Links()
	outbound, err := links.Outbound(ref, "", "")
	if err != nil {
		return fmt.Errorf("list outbound links: %w", err)
	}
	inbound, err := links.Inbound(ref, "", "")
	if err != nil {
		return fmt.Errorf("list inbound links: %w", err)
	}

	if flagJSON {
		return printJSON(map[string][]*types.Link{
			"outbound": outbound,
			"inbound":  inbound,
		})
	}
	for _, l := range outbound {
		fmt.Printf("%s  -> %s:%s (%s)\n", l.LinkID, l.TargetType, l.TargetID, l.LinkType)
	}
	for _, l := range inbound {
		fmt.Printf("%s  <- %s:%s (%s)\n", l.LinkID, l.SourceType, l.SourceID, l.LinkType)
	}
	return nil
}
