package facet

import (
	"errors"
	"fmt"
)

// Access errors shared by all capabilities (prd002-capabilities R5).
var (
	// ErrKeyNotFound reports a read of a key that was never written.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotComposed reports an operation whose capability is not part
	// of the host's composed type.
	ErrNotComposed = errors.New("capability not composed")

	// ErrStoreMissing reports a host whose Fields accessor returned nil.
	ErrStoreMissing = errors.New("host has no field store")
)

// Composition errors (prd004-composition R1.3).
var (
	ErrNameEmpty            = errors.New("type name must not be empty")
	ErrRebuildSourceUnknown = errors.New("unknown rebuild source")
)

// AccessError wraps a failed field access with the operation name and
// the key involved. The cause is available through Unwrap, so errors.Is
// matches the sentinels above.
// Implements: prd002-capabilities R5.1.
type AccessError struct {
	Op  string // operation that failed, e.g. "get", "set", "rebuild"
	Key string // key involved, empty for whole-store operations
	Err error  // underlying cause
}

// Error returns "op \"key\": cause", omitting the key when empty.
func (e *AccessError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AccessError) Unwrap() error { return e.Err }
