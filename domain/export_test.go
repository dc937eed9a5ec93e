package domain

// VersionDrift exports versionDrift for testing.
var VersionDrift = versionDrift //nolint:gochecknoglobals // test export

// NormalizeVersion exports normalizeVersion for testing.
var NormalizeVersion = normalizeVersion //nolint:gochecknoglobals // test export
