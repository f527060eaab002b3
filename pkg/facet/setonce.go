package facet

import "fmt"

// SetOnceMap holds keys that accept one binding. A key bound to nil
// stays writable; any other value is terminal, and later writes to that
// key are silently ignored. The zero value is an empty map ready for
// use.
// Implements: prd005-set-once R1, R2.
type SetOnceMap struct {
	vals map[string]any
}

// NewSetOnceMap returns an empty set-once map.
func NewSetOnceMap() *SetOnceMap {
	return &SetOnceMap{vals: make(map[string]any)}
}

// Set binds value to key unless the key already holds a non-nil value.
func (m *SetOnceMap) Set(key string, value any) {
	if existing, ok := m.vals[key]; ok && existing != nil {
		return
	}
	if m.vals == nil {
		m.vals = make(map[string]any)
	}
	m.vals[key] = value
}

// Get returns the value bound to key. Returns ErrKeyNotFound when the
// key was never written; a key explicitly bound to nil returns nil with
// no error.
func (m *SetOnceMap) Get(key string) (any, error) {
	v, ok := m.vals[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// Has reports whether key was ever written.
func (m *SetOnceMap) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

// Len returns the number of written keys.
func (m *SetOnceMap) Len() int { return len(m.vals) }

// String renders the bound values in Go map form, keys sorted.
func (m *SetOnceMap) String() string {
	return fmt.Sprintf("%v", m.vals)
}
