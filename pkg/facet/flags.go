package facet

// Capability flags recognized by intents, config files, and descriptor
// files. Flag-selected capabilities always append in the fixed order
// item, attr, iter, repr.
// Implements: prd004-composition R2.
const (
	FlagItem = "item"
	FlagAttr = "attr"
	FlagIter = "iter"
	FlagRepr = "repr"
)

// flagOrder fixes the order flag-selected capabilities append in.
var flagOrder = []string{FlagItem, FlagAttr, FlagIter, FlagRepr}

// flagCapabilities maps each flag to the capability it selects.
var flagCapabilities = map[string]Capability{
	FlagItem: KeyedAccess{},
	FlagAttr: AttrAccess{},
	FlagIter: Iteration{},
	FlagRepr: Representation{},
}

// validFlags is the set of recognized capability flags.
var validFlags = map[string]bool{
	FlagItem: true,
	FlagAttr: true,
	FlagIter: true,
	FlagRepr: true,
}

// ValidFlag reports whether name is a recognized capability flag.
func ValidFlag(name string) bool { return validFlags[name] }

// Flags returns the recognized capability flags in fixed order. The
// slice is a copy.
func Flags() []string {
	flags := make([]string, len(flagOrder))
	copy(flags, flagOrder)
	return flags
}

// ResolveFlags returns the capabilities selected by the true entries of
// flags, in fixed order. Unknown names and false entries are ignored.
func ResolveFlags(flags map[string]bool) []Capability {
	caps := make([]Capability, 0, len(flagOrder))
	for _, name := range flagOrder {
		if flags[name] {
			caps = append(caps, flagCapabilities[name])
		}
	}
	return caps
}
