package domain

import (
	"fmt"
	"strings"
)

// Entry represents one repository's record in a release manifest.
type Entry struct {
	Name     string        // Unique repository name
	Version  string        // Declared version, validated lazily
	GitTag   string        // Release tag; empty means "v" + Version by convention
	Requires []Requirement // Dependencies on other entries; may be empty
}

// Requirement represents a dependency reference declared by an entry.
// The wire form is "name" for an unpinned reference or "name=version"
// when the entry demands an exact version of its dependency.
type Requirement struct {
	Name string // Name of the depended-on entry
	Pin  string // Exact version demanded; empty means unpinned
}

// ParseRequirementRef decodes the wire form of a dependency reference.
func ParseRequirementRef(ref string) (Requirement, error) {
	name, pin, _ := strings.Cut(ref, "=")
	if name == "" {
		return Requirement{}, fmt.Errorf("requirement reference %q has no name", ref)
	}
	return Requirement{Name: name, Pin: pin}, nil
}

// String renders the requirement back into its wire form.
func (r Requirement) String() string {
	if r.Pin == "" {
		return r.Name
	}
	return r.Name + "=" + r.Pin
}

// clone returns a copy whose Requires slice shares no memory with e.
// Empty slices normalize to nil so entries compare equal across codecs.
func (e Entry) clone() Entry {
	out := e
	if len(e.Requires) == 0 {
		out.Requires = nil
		return out
	}
	out.Requires = make([]Requirement, len(e.Requires))
	copy(out.Requires, e.Requires)
	return out
}
