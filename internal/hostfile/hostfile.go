package hostfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/facets/pkg/facet"
)

// Host file errors (prd007-host-descriptors R3).
var (
	ErrHostNotFound  = errors.New("host not found")
	ErrHostNameEmpty = errors.New("host name must not be empty")
	ErrUnknownFlag   = errors.New("unknown capability flag")
	ErrUnknownSource = errors.New("unknown rebuild source")
)

// HostFile is the root of a YAML host descriptor file.
type HostFile struct {
	// Version of the host file schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Hosts is the list of declared host types.
	Hosts []HostDef `yaml:"hosts"`
}

// HostDef declares one host type.
type HostDef struct {
	// Name of the composed type (required).
	Name string `yaml:"name"`

	// Capabilities maps capability flags to their requested state.
	Capabilities map[string]bool `yaml:"capabilities,omitempty"`

	// Fields declares the type's fields; file order is declaration order.
	Fields []FieldDef `yaml:"fields,omitempty"`

	// RebuildFrom names the default rebuild source; empty selects the
	// type source.
	RebuildFrom string `yaml:"rebuild_from,omitempty"`
}

// FieldDef declares one field: a name bound to a value.
type FieldDef struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value,omitempty"`
}

// LoadFile loads and parses a YAML host file from the given path.
func LoadFile(path string) (*HostFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read host file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML data into a HostFile and applies defaults.
func Parse(data []byte) (*HostFile, error) {
	var hf HostFile
	if err := yaml.Unmarshal(data, &hf); err != nil {
		return nil, fmt.Errorf("failed to parse host YAML: %w", err)
	}
	applyDefaults(&hf)
	return &hf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(hf *HostFile) {
	if hf.Version == "" {
		hf.Version = "1"
	}
}

// Validate checks every host definition: names must be non-empty,
// capability flags recognized, and rebuild sources recognized.
func (hf *HostFile) Validate() error {
	for i := range hf.Hosts {
		if err := hf.Hosts[i].Validate(); err != nil {
			return fmt.Errorf("host %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks one host definition.
func (hd *HostDef) Validate() error {
	if hd.Name == "" {
		return ErrHostNameEmpty
	}
	for flag := range hd.Capabilities {
		if !facet.ValidFlag(flag) {
			return fmt.Errorf("%w: %q", ErrUnknownFlag, flag)
		}
	}
	if hd.RebuildFrom != "" && !facet.ValidRebuildSource(hd.RebuildFrom) {
		return fmt.Errorf("%w: %q", ErrUnknownSource, hd.RebuildFrom)
	}
	return nil
}

// Host returns the host definition with the given name.
// Returns ErrHostNotFound if no host carries the name.
func (hf *HostFile) Host(name string) (*HostDef, error) {
	for i := range hf.Hosts {
		if hf.Hosts[i].Name == name {
			return &hf.Hosts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrHostNotFound, name)
}

// Descriptor lowers the host definition to a facet descriptor.
func (hd *HostDef) Descriptor() facet.Descriptor {
	fields := make([]facet.Field, 0, len(hd.Fields))
	for _, f := range hd.Fields {
		fields = append(fields, facet.Field{Name: f.Name, Value: f.Value})
	}
	return facet.Descriptor{
		Name: hd.Name,
		Intent: facet.Intent{
			Item: hd.Capabilities[facet.FlagItem],
			Attr: hd.Capabilities[facet.FlagAttr],
			Iter: hd.Capabilities[facet.FlagIter],
			Repr: hd.Capabilities[facet.FlagRepr],
		},
		Fields:      fields,
		RebuildFrom: hd.RebuildFrom,
	}
}

// Compose validates the host definition and composes its type.
func (hd *HostDef) Compose() (*facet.Type, error) {
	if err := hd.Validate(); err != nil {
		return nil, err
	}
	return facet.Compose(hd.Descriptor())
}
