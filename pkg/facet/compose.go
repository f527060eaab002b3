package facet

// Intent selects flag-driven capabilities for Compose. Each true field
// appends its capability in fixed order: Item, Attr, Iter, Repr.
// Implements: prd004-composition R1.
type Intent struct {
	Item bool
	Attr bool
	Iter bool
	Repr bool
}

// flags lowers the intent to a flag map for ResolveFlags.
func (i Intent) flags() map[string]bool {
	return map[string]bool{
		FlagItem: i.Item,
		FlagAttr: i.Attr,
		FlagIter: i.Iter,
		FlagRepr: i.Repr,
	}
}

// Descriptor declares a host type for Compose.
type Descriptor struct {
	Name        string       // type name, shown by Representation (required)
	Intent      Intent       // flag-selected capabilities
	Bases       []Capability // explicit capabilities, kept first in order
	Fields      []Field      // declared fields, in declaration order
	RebuildFrom string       // default rebuild source; empty means RebuildFromType
}

// Type is an immutable composed host type: a name, an ordered capability
// list, declared fields, and a default rebuild source. Build one with
// Compose; a Type never changes afterwards.
// Implements: prd004-composition R3.
type Type struct {
	name        string
	caps        []Capability
	fields      []Field
	rebuildFrom string
}

// Compose builds a Type from a descriptor. Explicit bases keep their
// order and come first; intent-selected capabilities follow in fixed
// flag order, skipping any whose identity already appears. Identity is
// the capability's Go type, so a combined capability among the bases
// does not stand in for the single-concern capabilities it bundles.
// Returns ErrNameEmpty or ErrRebuildSourceUnknown on a bad descriptor.
func Compose(d Descriptor) (*Type, error) {
	if d.Name == "" {
		return nil, ErrNameEmpty
	}
	source := d.RebuildFrom
	if source == "" {
		source = RebuildFromType
	}
	if !validRebuildSources[source] {
		return nil, ErrRebuildSourceUnknown
	}
	caps := make([]Capability, 0, len(d.Bases)+len(flagOrder))
	caps = append(caps, d.Bases...)
	for _, c := range ResolveFlags(d.Intent.flags()) {
		if !hasCapability(caps, c) {
			caps = append(caps, c)
		}
	}
	fields := make([]Field, len(d.Fields))
	copy(fields, d.Fields)
	return &Type{name: d.Name, caps: caps, fields: fields, rebuildFrom: source}, nil
}

// BaseType composes a type with all four standard capabilities and the
// given declared fields.
func BaseType(name string, fields ...Field) (*Type, error) {
	return Compose(Descriptor{
		Name:   name,
		Intent: Intent{Item: true, Attr: true, Iter: true, Repr: true},
		Fields: fields,
	})
}

// hasCapability reports whether caps holds a capability of the same
// dynamic type as c.
func hasCapability(caps []Capability, c Capability) bool {
	for _, existing := range caps {
		if sameCapability(existing, c) {
			return true
		}
	}
	return false
}

// Name returns the type's name.
func (t *Type) Name() string { return t.name }

// RebuildSource returns the type's default rebuild source.
func (t *Type) RebuildSource() string { return t.rebuildFrom }

// Capabilities returns the composed capabilities in order. The slice is
// a copy.
func (t *Type) Capabilities() []Capability {
	caps := make([]Capability, len(t.caps))
	copy(caps, t.caps)
	return caps
}

// CapabilityIDs returns the composed capability IDs in order.
func (t *Type) CapabilityIDs() []string {
	ids := make([]string, 0, len(t.caps))
	for _, c := range t.caps {
		ids = append(ids, c.ID())
	}
	return ids
}

// Has reports whether a capability of c's dynamic type is composed in.
func (t *Type) Has(c Capability) bool { return hasCapability(t.caps, c) }

// DeclaredFields returns the type's declared fields in declaration
// order. The slice is a copy.
func (t *Type) DeclaredFields() []Field {
	fields := make([]Field, len(t.fields))
	copy(fields, t.fields)
	return fields
}

// New returns an instance of the type. The store starts with the given
// instance fields, in order; the same fields also feed instance-source
// rebuilds after the store is cleared.
func (t *Type) New(fields ...Field) *Object {
	obj := &Object{typ: t, store: NewStore(), own: make([]Field, len(fields))}
	copy(obj.own, fields)
	for _, f := range obj.own {
		obj.store.Set(f.Name, f.Value)
	}
	return obj
}
