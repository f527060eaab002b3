package facet

import "reflect"

// Capability is one unit of field-access behavior, attached to a Type at
// composition time. Capabilities are stateless values; identity is the
// value's Go type, so two values of the same capability type are the
// same capability.
// Implements: prd002-capabilities R1.
type Capability interface {
	// ID returns the capability's short name, e.g. "item" or "attr".
	ID() string
}

// Host is anything that owns a field store and knows its composed type.
// A nil store models a host without a field table; capability operations
// report it as an *AccessError wrapping ErrStoreMissing rather than
// panicking.
type Host interface {
	// Fields returns the host's field store, or nil when it has none.
	Fields() *Store

	// Type returns the host's composed type, or nil for untyped hosts.
	Type() *Type
}

// FieldProvider is an optional Host extension: per-instance fields read
// by Reconstruction when rebuilding from the instance.
type FieldProvider interface {
	InstanceFields() []Field
}

// sameCapability reports whether two capabilities share a dynamic type.
func sameCapability(a, b Capability) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// storeOf returns the host's store, or an *AccessError naming op and key
// when the host has none.
func storeOf(h Host, op, key string) (*Store, error) {
	if s := h.Fields(); s != nil {
		return s, nil
	}
	return nil, &AccessError{Op: op, Key: key, Err: ErrStoreMissing}
}
