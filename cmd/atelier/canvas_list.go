// Canvas list command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var canvasListKind string

var canvasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the acting user's canvases",
	RunE:  runCanvasList,
}

func init() {
	canvasListCmd.Flags().StringVar(&canvasListKind, "kind", "", "filter by canvas kind")
}

func runCanvasList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	canvases, err := newService(store).ListCanvases(canvasListKind)
	if err != nil {
		return fmt.Errorf("list canvases: %w", err)
	}

	if flagJSON {
		return printJSON(canvases)
	}
	for _, c := range canvases {
		fmt.Printf("%s  %s (%s)\n", c.CanvasID, c.Name, c.Kind)
	}
	return nil
}
