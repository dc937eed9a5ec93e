package domain

import (
	"strings"

	mm "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// ParsedVersion is a strictly parsed semantic version.
//
// This is a thin wrapper around github.com/Masterminds/semver/v3.
type ParsedVersion struct {
	v *mm.Version
}

// ValidateVersion checks raw against the strict semantic version grammar
// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]: all three numeric parts present,
// no superfluous leading zeros, no leading "v". Failures are reported as
// *VersionFormatError.
func ValidateVersion(raw string) (ParsedVersion, error) {
	v, err := mm.StrictNewVersion(raw)
	if err != nil {
		return ParsedVersion{}, &VersionFormatError{Input: raw, Err: err}
	}
	return ParsedVersion{v: v}, nil
}

// MustParseVersion is ValidateVersion for trusted literals.
func MustParseVersion(raw string) ParsedVersion {
	v, err := ValidateVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (p ParsedVersion) Major() uint64 {
	if p.v == nil {
		return 0
	}
	return p.v.Major()
}

func (p ParsedVersion) Minor() uint64 {
	if p.v == nil {
		return 0
	}
	return p.v.Minor()
}

func (p ParsedVersion) Patch() uint64 {
	if p.v == nil {
		return 0
	}
	return p.v.Patch()
}

// Prerelease returns the dot-separated identifiers after "-", or "".
func (p ParsedVersion) Prerelease() string {
	if p.v == nil {
		return ""
	}
	return p.v.Prerelease()
}

// Metadata returns the build identifiers after "+", or "".
func (p ParsedVersion) Metadata() string {
	if p.v == nil {
		return ""
	}
	return p.v.Metadata()
}

func (p ParsedVersion) String() string {
	if p.v == nil {
		return ""
	}
	return p.v.String()
}

// Compare returns -1, 0, or 1 ordering p against other. Build metadata is
// ignored, as the semantic versioning rules demand.
func (p ParsedVersion) Compare(other ParsedVersion) int {
	if p.v == nil && other.v == nil {
		return 0
	}
	if p.v == nil {
		return -1
	}
	if other.v == nil {
		return 1
	}
	return p.v.Compare(other.v)
}

// versionDrift orders two raw version strings: negative when a is behind b,
// positive when ahead, zero when equal. Strings compare semantically when
// both are well-formed versions and byte-wise otherwise.
func versionDrift(a, b string) int {
	na, nb := normalizeVersion(a), normalizeVersion(b)
	if semver.IsValid(na) && semver.IsValid(nb) {
		return semver.Compare(na, nb)
	}
	return strings.Compare(a, b)
}

func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
