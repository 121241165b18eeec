// Link command group.
package main

import "github.com/spf13/cobra"

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage typed links between entities",
}

func init() {
	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkRemoveCmd)
	linkCmd.AddCommand(linkSyncCmd)
	linkCmd.AddCommand(linkListCmd)
}
