package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/releaseforge/domain"
)

// ManifestBuilder helps create test manifests with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	entries []domain.Entry
}

// NewManifestBuilder creates a new manifest builder with no entries.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
	}
}

// WithEntry appends one entry.
func (b *ManifestBuilder) WithEntry(entry domain.Entry) *ManifestBuilder {
	b.entries = append(b.entries, entry)
	return b
}

// WithEntries appends entries in order.
func (b *ManifestBuilder) WithEntries(entries ...domain.Entry) *ManifestBuilder {
	b.entries = append(b.entries, entries...)
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type. It
// panics on invalid entries; tests that exercise construction errors call
// domain.NewManifest directly.
func (b *ManifestBuilder) BuildManifest() *domain.Manifest {
	manifest, err := domain.NewManifest(b.entries)
	if err != nil {
		panic(err)
	}
	return manifest
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.entries = nil
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	entries := make([]domain.Entry, len(b.entries))
	copy(entries, b.entries)
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		entries:     entries,
	}
}
