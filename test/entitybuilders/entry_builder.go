package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/releaseforge/domain"
)

// EntryBuilder helps create test manifest entries with a fluent interface.
type EntryBuilder struct {
	*testkit.BaseBuilder
	name     string
	version  string
	gitTag   string
	requires []domain.Requirement
}

// NewEntryBuilder creates a new entry builder with sensible defaults.
func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-entry",
		version:     "1.0.0",
	}
}

// WithName sets the entry name.
func (b *EntryBuilder) WithName(name string) *EntryBuilder {
	b.name = name
	return b
}

// WithVersion sets the declared version.
func (b *EntryBuilder) WithVersion(version string) *EntryBuilder {
	b.version = version
	return b
}

// WithGitTag sets the release tag.
func (b *EntryBuilder) WithGitTag(tag string) *EntryBuilder {
	b.gitTag = tag
	return b
}

// Requiring appends unpinned requirements on the given entries.
func (b *EntryBuilder) Requiring(names ...string) *EntryBuilder {
	for _, name := range names {
		b.requires = append(b.requires, domain.Requirement{Name: name})
	}
	return b
}

// RequiringPinned appends a requirement pinned to an exact version.
func (b *EntryBuilder) RequiringPinned(name, pin string) *EntryBuilder {
	b.requires = append(b.requires, domain.Requirement{Name: name, Pin: pin})
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *EntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *EntryBuilder) BuildEntry() domain.Entry {
	requires := make([]domain.Requirement, len(b.requires))
	copy(requires, b.requires)
	if len(requires) == 0 {
		requires = nil
	}
	return domain.Entry{
		Name:     b.name,
		Version:  b.version,
		GitTag:   b.gitTag,
		Requires: requires,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *EntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-entry"
	b.version = "1.0.0"
	b.gitTag = ""
	b.requires = nil
	return b
}

// Clone creates a deep copy of the EntryBuilder.
func (b *EntryBuilder) Clone() testkit.Builder {
	requires := make([]domain.Requirement, len(b.requires))
	copy(requires, b.requires)
	return &EntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		gitTag:      b.gitTag,
		requires:    requires,
	}
}
