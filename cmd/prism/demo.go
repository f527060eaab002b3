// Demo command group for the prism CLI.
// Implements: prd006-prism-cli R4.
package main

import "github.com/spf13/cobra"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the library's capabilities",
}

func init() {
	demoCmd.AddCommand(demoBasicCmd)
	demoCmd.AddCommand(demoConfigCmd)
	demoCmd.AddCommand(demoSetOnceCmd)
}
