// Link sync command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	linkSyncType    string
	linkSyncTargets []string
	linkSyncInbound bool
)

var linkSyncCmd = &cobra.Command{
	Use:   "sync <entity-type:id> <other-type>",
	Short: "Reconcile an entity's edge set against a target list",
	Long: `Sync makes the entity's edges of the given type to the other entity
type match the --targets list exactly: missing edges are created, extra
edges removed, existing edges kept. An empty --targets list clears the
set.

With --inbound the entity is treated as the edge target and the list
names sources instead.

Example:
  atelier link sync canvas:CANVAS project --type belongs_to --targets p1,p2
  atelier link sync project:p1 canvas --type belongs_to --targets c2 --inbound`,
	Args: cobra.ExactArgs(2),
	RunE: runLinkSync,
}

func init() {
	linkSyncCmd.Flags().StringVar(&linkSyncType, "type", "", "link type (required)")
	linkSyncCmd.Flags().StringSliceVar(&linkSyncTargets, "targets", nil, "desired identifiers, comma separated")
	linkSyncCmd.Flags().BoolVar(&linkSyncInbound, "inbound", false, "reconcile inbound edges instead of outbound")
	_ = linkSyncCmd.MarkFlagRequired("type")
}

func runLinkSync(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}
	otherType := args[1]

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	links := newService(store).Links()
	if linkSyncInbound {
		err = links.SyncAsTarget(ref, otherType, linkSyncType, linkSyncTargets)
	} else {
		err = links.Sync(ref, otherType, linkSyncType, linkSyncTargets)
	}
	if err != nil {
		return fmt.Errorf("sync links: %w", err)
	}
	fmt.Println("Synced links")
	return nil
}
