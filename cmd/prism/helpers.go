// Shared helpers for prism CLI commands.
// Implements: prd006-prism-cli (R3, R8).
package main

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/facets/internal/hostfile"
	"github.com/mesh-intelligence/facets/pkg/facet"
)

// userErrors are failures caused by command input rather than the system.
// They exit with exitUserError; everything else exits with exitSysError.
var userErrors = []error{
	facet.ErrKeyNotFound,
	facet.ErrNotComposed,
	facet.ErrNameEmpty,
	facet.ErrRebuildSourceUnknown,
	hostfile.ErrHostNotFound,
	hostfile.ErrHostNameEmpty,
	hostfile.ErrUnknownFlag,
	hostfile.ErrUnknownSource,
}

// exitCode maps an error to the CLI exit code (prd006-prism-cli R8).
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, userErr := range userErrors {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}

// newID returns a fresh UUID v7 string, used by demos for generated
// credentials.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// joinIDs renders a capability ID list for output.
func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
