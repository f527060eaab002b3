// Compose command composes host types from YAML descriptor files.
// Implements: prd006-prism-cli R3; prd007-host-descriptors R4;
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/facets/internal/hostfile"
	"github.com/mesh-intelligence/facets/pkg/facet"
)

var composeCmd = &cobra.Command{
	Use:   "compose <host-file> [host]",
	Short: "Compose host types from a descriptor file",
	Long: `Compose loads a YAML host descriptor file, validates it, and composes
each declared host type. With a host name argument, only that host is
composed.

The file argument is used as given when it names an existing file;
otherwise it is looked up inside the hosts directory.

Example:
  prism compose hosts.yaml
  prism compose hosts.yaml Person`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompose,
}

func runCompose(cmd *cobra.Command, args []string) error {
	path, err := resolveHostFile(args[0])
	if err != nil {
		return fmt.Errorf("resolve host file: %w", err)
	}
	logger.Debug("loading host file", zap.String("path", path))

	hf, err := hostfile.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load host file: %w", err)
	}
	if err := hf.Validate(); err != nil {
		return fmt.Errorf("validate host file: %w", err)
	}

	defs := hf.Hosts
	if len(args) == 2 {
		hd, err := hf.Host(args[1])
		if err != nil {
			return err
		}
		defs = []hostfile.HostDef{*hd}
	}

	for _, hd := range defs {
		typ, err := facet.Compose(hd.Descriptor())
		if err != nil {
			return fmt.Errorf("compose %s: %w", hd.Name, err)
		}
		fmt.Printf("%s: capabilities [%s], %d fields\n",
			typ.Name(), joinIDs(typ.CapabilityIDs()), len(typ.DeclaredFields()))
		fmt.Println("  " + typ.New().String())
	}
	return nil
}

// resolveHostFile returns arg when it names an existing file, otherwise
// the path of arg inside the resolved hosts directory.
func resolveHostFile(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}
	dir, err := resolveHostsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, arg), nil
}
