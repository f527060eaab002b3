// Demo setonce walks through write-once credential storage.
// Implements: prd006-prism-cli R4.3.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/facets/pkg/facet"
)

var demoSetOnceCmd = &cobra.Command{
	Use:   "setonce",
	Short: "Write-once keys with a nil escape hatch",
	Args:  cobra.NoArgs,
	RunE:  runDemoSetOnce,
}

func runDemoSetOnce(cmd *cobra.Command, args []string) error {
	creds := facet.NewSetOnceMap()

	creds.Set("database_url", "postgres://localhost:5432/app")
	creds.Set("database_url", "postgres://elsewhere:5432/oops")

	dbURL, err := creds.Get("database_url")
	if err != nil {
		return err
	}
	fmt.Println("database_url after overwrite attempt:", dbURL)

	// A nil binding reserves the key but stays writable.
	creds.Set("api_key", nil)
	placeholder, err := creds.Get("api_key")
	if err != nil {
		return err
	}
	fmt.Printf("api_key placeholder: %v\n", placeholder)

	apiKey := newID()
	logger.Debug("generated api key", zap.String("api_key", apiKey))
	creds.Set("api_key", apiKey)
	creds.Set("api_key", "override-attempt")

	got, err := creds.Get("api_key")
	if err != nil {
		return err
	}
	fmt.Println("api_key survives overwrite:", got == apiKey)

	if _, err := creds.Get("missing"); errors.Is(err, facet.ErrKeyNotFound) {
		fmt.Println("missing key: key not found")
	}

	fmt.Printf("%d credentials stored\n", creds.Len())
	return nil
}
