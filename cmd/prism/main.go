// Package main provides the prism CLI.
// Implements: prd006-prism-cli R1, R5;
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
