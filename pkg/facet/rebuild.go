package facet

import (
	"reflect"
	"sort"
	"strings"
)

// Rebuild sources. A type composed without an explicit source defaults
// to RebuildFromType.
// Implements: prd003-reconstruction R1.
const (
	RebuildFromType     = "type"
	RebuildFromInstance = "instance"
)

// validRebuildSources is the set of recognized rebuild source values.
var validRebuildSources = map[string]bool{
	RebuildFromType:     true,
	RebuildFromInstance: true,
}

// ValidRebuildSource reports whether name is a recognized rebuild source.
func ValidRebuildSource(name string) bool { return validRebuildSources[name] }

// internalPrefix marks field names skipped by reconstruction.
const internalPrefix = "_"

// Reconstruction refills an empty field store from declared fields.
// Rebuilding is idempotent while the store is non-empty: only an empty
// store is filled. Fields with the internal name prefix and fields
// holding callable values are skipped.
// Implements: prd003-reconstruction R1, R2, R3.
type Reconstruction struct{}

// ID returns "rebuild".
func (Reconstruction) ID() string { return "rebuild" }

// Rebuild fills an empty store from the named source. An empty source
// name selects the host type's default source.
// Returns ErrRebuildSourceUnknown for an unrecognized source.
func (r Reconstruction) Rebuild(h Host, source string) error {
	if source == "" {
		source = RebuildFromType
		if t := h.Type(); t != nil {
			source = t.RebuildSource()
		}
	}
	switch source {
	case RebuildFromType:
		return r.FromType(h)
	case RebuildFromInstance:
		return r.FromInstance(h)
	default:
		return ErrRebuildSourceUnknown
	}
}

// FromType fills an empty store from the type's declared fields, in
// declaration order.
func (r Reconstruction) FromType(h Host) error {
	s, err := storeOf(h, "rebuild", "")
	if err != nil {
		return err
	}
	if s.Len() > 0 {
		return nil
	}
	if t := h.Type(); t != nil {
		for _, f := range t.DeclaredFields() {
			if skipField(f.Name, f.Value) {
				continue
			}
			s.Set(f.Name, f.Value)
		}
	}
	return nil
}

// FromInstance fills an empty store from the instance's fields merged
// over the type's, the instance winning on name collisions. Merged
// fields are applied in sorted name order.
func (r Reconstruction) FromInstance(h Host) error {
	s, err := storeOf(h, "rebuild", "")
	if err != nil {
		return err
	}
	if s.Len() > 0 {
		return nil
	}
	merged := make(map[string]any)
	if t := h.Type(); t != nil {
		for _, f := range t.DeclaredFields() {
			merged[f.Name] = f.Value
		}
	}
	if p, ok := h.(FieldProvider); ok {
		for _, f := range p.InstanceFields() {
			merged[f.Name] = f.Value
		}
	}
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if skipField(name, merged[name]) {
			continue
		}
		s.Set(name, merged[name])
	}
	return nil
}

// skipField reports whether reconstruction ignores the field: internal
// names and callable values.
func skipField(name string, value any) bool {
	if strings.HasPrefix(name, internalPrefix) {
		return true
	}
	return reflect.ValueOf(value).Kind() == reflect.Func
}
