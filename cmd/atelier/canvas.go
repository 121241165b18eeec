// Canvas command group.
package main

import "github.com/spf13/cobra"

var canvasCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Manage canvases",
}

func init() {
	canvasCmd.AddCommand(canvasCreateCmd)
	canvasCmd.AddCommand(canvasShowCmd)
	canvasCmd.AddCommand(canvasListCmd)
	canvasCmd.AddCommand(canvasDeleteCmd)
}
