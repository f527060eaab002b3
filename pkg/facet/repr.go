package facet

import (
	"fmt"
	"strings"
)

// Representation renders a host as Name(key=value, ...). String values
// are single-quoted; other values print in their default Go form. An
// empty store is rebuilt from the type's default source before
// rendering, so a freshly cleared host still shows its declared fields.
// Representation embeds Reconstruction, making the rebuild operations
// available on any type composed with it.
// Implements: prd003-reconstruction R4.
type Representation struct {
	Reconstruction
}

// ID returns "repr".
func (Representation) ID() string { return FlagRepr }

// Format renders the host. A host with no store fails with *AccessError.
func (r Representation) Format(h Host) (string, error) {
	store, err := storeOf(h, "repr", "")
	if err != nil {
		return "", err
	}
	if store.Len() == 0 {
		if err := r.Rebuild(h, ""); err != nil {
			return "", err
		}
	}
	name := ""
	if t := h.Type(); t != nil {
		name = t.Name()
	}
	items := store.Items()
	if len(items) == 0 {
		return name + "()", nil
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s=%s", it.Key, formatValue(it.Value)))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", ")), nil
}

// formatValue single-quotes strings and prints everything else with the
// default format.
func formatValue(v any) string {
	if sv, ok := v.(string); ok {
		return "'" + sv + "'"
	}
	return fmt.Sprintf("%v", v)
}
