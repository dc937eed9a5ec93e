// Package parser decodes and encodes release manifests. Each wire format
// is handled by a Codec; a Registry holds the codecs a caller wants to
// accept. Codecs operate on text they are handed and never touch the
// filesystem or the network.
package parser

import (
	"sort"

	"github.com/rios0rios0/releaseforge/domain"
)

// Format identifies a manifest wire format.
type Format string

const (
	// FormatHCL is the canonical manifest format.
	FormatHCL Format = "hcl"
	// FormatYAML is the alternate manifest format.
	FormatYAML Format = "yaml"
)

// Codec parses and serializes manifests for one wire format. Parse must
// round-trip Serialize: decoding a codec's own output yields an equal
// manifest.
type Codec interface {
	Format() Format
	Parse(text string) (*domain.Manifest, error)
	Serialize(manifest *domain.Manifest) (string, error)
}

// Registry manages the registered manifest codecs.
type Registry struct {
	codecs map[Format]Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[Format]Codec),
	}
}

// DefaultRegistry creates a registry with every built-in codec. Each call
// returns a fresh registry, so callers never share mutable state.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewHCLCodec())
	r.Register(NewYAMLCodec())
	return r
}

// Register adds a codec under its format.
func (r *Registry) Register(c Codec) {
	r.codecs[c.Format()] = c
}

// Get returns the codec for the given format, or nil if not registered.
func (r *Registry) Get(format Format) Codec {
	return r.codecs[format]
}

// All returns every registered codec, ordered by format.
func (r *Registry) All() []Codec {
	result := make([]Codec, 0, len(r.codecs))
	for _, format := range r.Formats() {
		result = append(result, r.codecs[format])
	}
	return result
}

// Formats returns the list of registered formats, sorted.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.codecs))
	for format := range r.codecs {
		formats = append(formats, format)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
