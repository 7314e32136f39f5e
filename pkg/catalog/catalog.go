package catalog

import (
	"sort"
	"strings"
)

// InstanceSpec describes the static characteristics of one EC2 instance type.
type InstanceSpec struct {
	InstanceType string  `json:"instance_type" yaml:"instance_type"`
	VCPUs        int32   `json:"vcpus" yaml:"vcpus"`
	MemoryGiB    float64 `json:"memory_gib" yaml:"memory_gib"`
	Family       string  `json:"family" yaml:"family"`
	Performance  float64 `json:"performance" yaml:"performance"` // relative index, unitless
}

// Catalog is an immutable lookup table of instance specs. Build one with New
// (or Default) and share it freely; it is never mutated after construction.
type Catalog struct {
	specs map[string]InstanceSpec
}

// New builds a catalog from the given specs. The input map is copied so the
// caller cannot mutate the catalog afterwards.
func New(specs map[string]InstanceSpec) *Catalog {
	copied := make(map[string]InstanceSpec, len(specs))
	for name, spec := range specs {
		if spec.Family == "" {
			spec.Family = ExtractFamily(name)
		}
		copied[name] = spec
	}
	return &Catalog{specs: copied}
}

// Default returns a catalog backed by the built-in spec table.
func Default() *Catalog {
	return New(DefaultSpecs)
}

// Lookup returns the spec for an instance type. The second return value is
// false when the type is not in the catalog; callers must treat such types
// as unsupported rather than guessing specs.
func (c *Catalog) Lookup(instanceType string) (InstanceSpec, bool) {
	spec, ok := c.specs[instanceType]
	return spec, ok
}

// Specs returns all catalog entries sorted by instance type name.
func (c *Catalog) Specs() []InstanceSpec {
	specs := make([]InstanceSpec, 0, len(c.specs))
	for _, spec := range c.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].InstanceType < specs[j].InstanceType
	})
	return specs
}

// Family returns all entries sharing a family code, sorted by name.
func (c *Catalog) Family(family string) []InstanceSpec {
	var specs []InstanceSpec
	for _, spec := range c.specs {
		if spec.Family == family {
			specs = append(specs, spec)
		}
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].InstanceType < specs[j].InstanceType
	})
	return specs
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// ExtractFamily extracts the instance family from an instance type
// (e.g. "c6a" from "c6a.4xlarge").
func ExtractFamily(instanceType string) string {
	if i := strings.IndexByte(instanceType, '.'); i >= 0 {
		return instanceType[:i]
	}
	return instanceType
}

// ExtractSize extracts the size suffix from an instance type
// (e.g. "4xlarge" from "c6a.4xlarge"). Returns "" when there is no suffix.
func ExtractSize(instanceType string) string {
	if i := strings.IndexByte(instanceType, '.'); i >= 0 {
		return instanceType[i+1:]
	}
	return ""
}
