package parser

import (
	"github.com/rios0rios0/releaseforge/domain"
)

// Parse decodes manifest text in the canonical HCL format.
func Parse(text string) (*domain.Manifest, error) {
	return NewHCLCodec().Parse(text)
}

// Serialize renders a manifest in the canonical HCL format.
func Serialize(manifest *domain.Manifest) (string, error) {
	return NewHCLCodec().Serialize(manifest)
}
