package facet

// KeyedAccess grants dictionary-style access to a host's fields: get,
// set, delete, and ordered snapshots. Reading a missing key returns nil
// without an error; only a missing store fails.
// Implements: prd002-capabilities R2.
type KeyedAccess struct{}

// ID returns "item".
func (KeyedAccess) ID() string { return FlagItem }

// Get returns the value bound to key, or nil when the key is absent.
func (KeyedAccess) Get(h Host, key string) (any, error) {
	s, err := storeOf(h, "get", key)
	if err != nil {
		return nil, err
	}
	v, _ := s.Get(key)
	return v, nil
}

// Set binds value to key.
func (KeyedAccess) Set(h Host, key string, value any) error {
	s, err := storeOf(h, "set", key)
	if err != nil {
		return err
	}
	s.Set(key, value)
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (KeyedAccess) Delete(h Host, key string) error {
	s, err := storeOf(h, "delete", key)
	if err != nil {
		return err
	}
	s.Delete(key)
	return nil
}

// Keys returns the host's keys in insertion order.
func (KeyedAccess) Keys(h Host) ([]string, error) {
	s, err := storeOf(h, "keys", "")
	if err != nil {
		return nil, err
	}
	return s.Keys(), nil
}

// Values returns the host's values in key insertion order.
func (KeyedAccess) Values(h Host) ([]any, error) {
	s, err := storeOf(h, "values", "")
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}

// Items returns the host's key/value pairs in insertion order.
func (KeyedAccess) Items(h Host) ([]Item, error) {
	s, err := storeOf(h, "items", "")
	if err != nil {
		return nil, err
	}
	return s.Items(), nil
}
