// Package testdoubles provides test doubles (spies, stubs, dummies) for the
// parser interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"github.com/rios0rios0/releaseforge/domain"
	parserPkg "github.com/rios0rios0/releaseforge/parser"
)

// ---------------------------------------------------------------------------
// SpyCodec
// ---------------------------------------------------------------------------

// SpyCodec implements parser.Codec as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyCodec struct {
	// --- identity ---
	CodecFormat parserPkg.Format

	// --- Parse ---
	Manifest *domain.Manifest
	ParseErr error
	// spy: texts that were parsed
	ParsedTexts []string

	// --- Serialize ---
	Rendered     string
	SerializeErr error
	// spy: manifests received
	SerializedManifests []*domain.Manifest
}

var _ parserPkg.Codec = (*SpyCodec)(nil)

func (c *SpyCodec) Format() parserPkg.Format { return c.CodecFormat }

func (c *SpyCodec) Parse(text string) (*domain.Manifest, error) {
	c.ParsedTexts = append(c.ParsedTexts, text)
	return c.Manifest, c.ParseErr
}

func (c *SpyCodec) Serialize(manifest *domain.Manifest) (string, error) {
	c.SerializedManifests = append(c.SerializedManifests, manifest)
	return c.Rendered, c.SerializeErr
}

// ---------------------------------------------------------------------------
// DummyCodec — satisfies the interface but does nothing (for compile checks)
// ---------------------------------------------------------------------------

// DummyCodec is a no-op implementation of parser.Codec.
// Use it only for interface compliance tests or as a placeholder.
type DummyCodec struct{}

var _ parserPkg.Codec = (*DummyCodec)(nil)

func (d *DummyCodec) Format() parserPkg.Format { return "dummy" }

func (d *DummyCodec) Parse(_ string) (*domain.Manifest, error) {
	return nil, nil //nolint:nilnil // dummy no-op
}

func (d *DummyCodec) Serialize(_ *domain.Manifest) (string, error) {
	return "", nil
}
