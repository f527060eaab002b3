package facet

import "iter"

// Per-concern views used to gate Object operations on the composed
// capability list. Any composed capability satisfying one of these
// answers the matching operations, so a combined capability works even
// though its identity differs from the single-concern ones.
type (
	keyedGetter  interface{ Get(Host, string) (any, error) }
	keyedSetter  interface{ Set(Host, string, any) error }
	keyedDeleter interface{ Delete(Host, string) error }
	keyedLister  interface {
		Keys(Host) ([]string, error)
		Values(Host) ([]any, error)
		Items(Host) ([]Item, error)
	}
	attrAccessor interface {
		GetAttr(Host, string) any
		SetAttr(Host, string, any) error
		DelAttr(Host, string) error
	}
	fieldIterator  interface{ Iter(Host) iter.Seq2[string, any] }
	fieldRebuilder interface{ Rebuild(Host, string) error }
	reprFormatter  interface{ Format(Host) (string, error) }
)

// Object is the canonical Host: an instance of a composed Type with its
// own ordered field store. Operations answer only when a matching
// capability was composed into the type; otherwise they return
// ErrNotComposed. The zero value is an untyped host with no store.
// Implements: prd004-composition R4.
type Object struct {
	typ   *Type
	store *Store
	own   []Field // instance fields given at New, kept for rebuilds
}

var (
	_ Host          = (*Object)(nil)
	_ FieldProvider = (*Object)(nil)
)

// Fields returns the object's store, or nil for a zero-value Object.
func (o *Object) Fields() *Store { return o.store }

// Type returns the object's composed type.
func (o *Object) Type() *Type { return o.typ }

// InstanceFields returns the fields the object was created with. The
// slice is a copy.
func (o *Object) InstanceFields() []Field {
	fields := make([]Field, len(o.own))
	copy(fields, o.own)
	return fields
}

// capabilityAs returns the first composed capability satisfying T.
func capabilityAs[T any](o *Object) (T, bool) {
	var zero T
	if o.typ == nil {
		return zero, false
	}
	for _, c := range o.typ.caps {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	return zero, false
}

// Get returns the value bound to key, or nil when absent. Requires a
// keyed-get capability.
func (o *Object) Get(key string) (any, error) {
	g, ok := capabilityAs[keyedGetter](o)
	if !ok {
		return nil, ErrNotComposed
	}
	return g.Get(o, key)
}

// Set binds value to key. Requires a keyed-set capability.
func (o *Object) Set(key string, value any) error {
	s, ok := capabilityAs[keyedSetter](o)
	if !ok {
		return ErrNotComposed
	}
	return s.Set(o, key, value)
}

// Delete removes key. Requires a keyed-delete capability.
func (o *Object) Delete(key string) error {
	d, ok := capabilityAs[keyedDeleter](o)
	if !ok {
		return ErrNotComposed
	}
	return d.Delete(o, key)
}

// Keys returns the object's keys in insertion order. Requires a
// keyed-listing capability.
func (o *Object) Keys() ([]string, error) {
	l, ok := capabilityAs[keyedLister](o)
	if !ok {
		return nil, ErrNotComposed
	}
	return l.Keys(o)
}

// Values returns the object's values in key insertion order. Requires a
// keyed-listing capability.
func (o *Object) Values() ([]any, error) {
	l, ok := capabilityAs[keyedLister](o)
	if !ok {
		return nil, ErrNotComposed
	}
	return l.Values(o)
}

// Items returns the object's key/value pairs in insertion order.
// Requires a keyed-listing capability.
func (o *Object) Items() ([]Item, error) {
	l, ok := capabilityAs[keyedLister](o)
	if !ok {
		return nil, ErrNotComposed
	}
	return l.Items(o)
}

// Attr returns the value bound to name, or nil when absent. Requires an
// attribute capability; with one composed, the read itself never fails.
func (o *Object) Attr(name string) (any, error) {
	a, ok := capabilityAs[attrAccessor](o)
	if !ok {
		return nil, ErrNotComposed
	}
	return a.GetAttr(o, name), nil
}

// SetAttr binds value to name. Requires an attribute capability.
func (o *Object) SetAttr(name string, value any) error {
	a, ok := capabilityAs[attrAccessor](o)
	if !ok {
		return ErrNotComposed
	}
	return a.SetAttr(o, name, value)
}

// DelAttr removes name. Requires an attribute capability.
func (o *Object) DelAttr(name string) error {
	a, ok := capabilityAs[attrAccessor](o)
	if !ok {
		return ErrNotComposed
	}
	return a.DelAttr(o, name)
}

// Iterate returns a snapshot sequence over the object's fields.
// Requires an iteration capability.
func (o *Object) Iterate() (iter.Seq2[string, any], error) {
	it, ok := capabilityAs[fieldIterator](o)
	if !ok {
		return nil, ErrNotComposed
	}
	return it.Iter(o), nil
}

// Rebuild fills an empty store from the named source, or from the
// type's default when source is empty. Requires a reconstruction
// capability; Representation carries one.
func (o *Object) Rebuild(source string) error {
	r, ok := capabilityAs[fieldRebuilder](o)
	if !ok {
		return ErrNotComposed
	}
	return r.Rebuild(o, source)
}

// Repr renders the object through its representation capability.
func (o *Object) Repr() (string, error) {
	f, ok := capabilityAs[reprFormatter](o)
	if !ok {
		return "", ErrNotComposed
	}
	return f.Format(o)
}

// String implements fmt.Stringer. Objects without a representation
// capability, and objects whose formatting fails, print as <Name>.
func (o *Object) String() string {
	if s, err := o.Repr(); err == nil {
		return s
	}
	name := "Object"
	if o.typ != nil {
		name = o.typ.Name()
	}
	return "<" + name + ">"
}
