package facet

// AttrAccess grants attribute-style access to a host's fields. Reads
// never fail: a missing name returns nil, even on a host with no store.
// Writes and deletes go through the store and fail without one.
// Implements: prd002-capabilities R3.
type AttrAccess struct{}

// ID returns "attr".
func (AttrAccess) ID() string { return FlagAttr }

// GetAttr returns the value bound to name, or nil when the name is
// absent or the host has no store.
func (AttrAccess) GetAttr(h Host, name string) any {
	s := h.Fields()
	if s == nil {
		return nil
	}
	v, _ := s.Get(name)
	return v
}

// SetAttr binds value to name.
func (AttrAccess) SetAttr(h Host, name string, value any) error {
	s, err := storeOf(h, "setattr", name)
	if err != nil {
		return err
	}
	s.Set(name, value)
	return nil
}

// DelAttr removes name. Removing an absent name is a no-op here; callers
// must not rely on absent-name behavior staying that way.
func (AttrAccess) DelAttr(h Host, name string) error {
	s, err := storeOf(h, "delattr", name)
	if err != nil {
		return err
	}
	s.Delete(name)
	return nil
}
