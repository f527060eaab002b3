// Version command for the prism CLI.
// Implements: prd006-prism-cli R2.2.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/facets/pkg/facet"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prism version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("prism", facet.Version)
	},
}
