// Demo basic walks through keyed access, attribute access, iteration,
// and representation on a composed host.
// Implements: prd006-prism-cli R4.1.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/facets/pkg/facet"
)

var demoBasicCmd = &cobra.Command{
	Use:   "basic",
	Short: "Keyed access, iteration, and representation on one host",
	Args:  cobra.NoArgs,
	RunE:  runDemoBasic,
}

func runDemoBasic(cmd *cobra.Command, args []string) error {
	person, err := facet.BaseType("Person")
	if err != nil {
		return fmt.Errorf("compose Person: %w", err)
	}
	logger.Debug("composed type",
		zap.String("name", person.Name()),
		zap.Strings("capabilities", person.CapabilityIDs()))

	fmt.Printf("composed %s with capabilities: %s\n",
		person.Name(), joinIDs(person.CapabilityIDs()))

	obj := person.New(
		facet.Field{Name: "name", Value: "Alice"},
		facet.Field{Name: "age", Value: 30},
		facet.Field{Name: "city", Value: "Paris"},
	)
	fmt.Println(obj)

	name, err := obj.Get("name")
	if err != nil {
		return err
	}
	fmt.Println("name:", name)

	if err := obj.Set("email", "alice@example.com"); err != nil {
		return err
	}
	if err := obj.Delete("city"); err != nil {
		return err
	}

	keys, err := obj.Keys()
	if err != nil {
		return err
	}
	fmt.Println("keys after set and delete:", keys)

	// Attribute reads never fail once the capability is composed.
	phone, err := obj.Attr("phone")
	if err != nil {
		return err
	}
	fmt.Printf("phone attribute: %v\n", phone)

	seq, err := obj.Iterate()
	if err != nil {
		return err
	}
	fmt.Println("fields:")
	for k, v := range seq {
		fmt.Printf("  %s=%v\n", k, v)
	}

	fmt.Println(obj)
	return nil
}
