package facet

// GetSetDel bundles keyed get, set, and delete into one capability. It
// carries its own identity: Compose does not treat a GetSetDel base as
// covering the item intent flag, so requesting both yields both.
// Implements: prd002-capabilities R6.
type GetSetDel struct{}

// ID returns "getsetdel".
func (GetSetDel) ID() string { return "getsetdel" }

// Get returns the value bound to key, or nil when the key is absent.
func (GetSetDel) Get(h Host, key string) (any, error) {
	return KeyedAccess{}.Get(h, key)
}

// Set binds value to key.
func (GetSetDel) Set(h Host, key string, value any) error {
	return KeyedAccess{}.Set(h, key, value)
}

// Delete removes key. Deleting an absent key is a no-op.
func (GetSetDel) Delete(h Host, key string) error {
	return KeyedAccess{}.Delete(h, key)
}
