package domain

import (
	"fmt"
	"strings"
)

// SyntaxError reports malformed manifest text. Line is 1-based; zero means
// the position could not be determined.
type SyntaxError struct {
	Line   int
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %s", e.Detail)
	}
	return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Detail)
}

// DuplicateEntryError reports a repository name defined more than once.
type DuplicateEntryError struct {
	Name string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("duplicate entry %q", e.Name)
}

// InvalidNameError reports an entry name that is empty or contains whitespace.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid entry name %q", e.Name)
}

// VersionFormatError reports a version string that does not satisfy the
// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] grammar. Name is empty when the
// version was checked outside the context of a manifest entry.
type VersionFormatError struct {
	Name  string
	Input string
	Err   error
}

func (e *VersionFormatError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid version %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("entry %q has invalid version %q: %v", e.Name, e.Input, e.Err)
}

func (e *VersionFormatError) Unwrap() error {
	return e.Err
}

// MissingDependencyError reports a requirement naming an entry that the
// manifest does not define.
type MissingDependencyError struct {
	From string
	To   string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("entry %q requires %q, which is not defined", e.From, e.To)
}

// RequirementConflictError reports a requirement pin that contradicts the
// version the depended-on entry declares. Drift is negative when the pin is
// behind the declared version, positive when ahead, and zero when the two
// could not be ordered.
type RequirementConflictError struct {
	From     string
	To       string
	Pinned   string
	Declared string
	Drift    int
}

func (e *RequirementConflictError) Error() string {
	msg := fmt.Sprintf(
		"entry %q requires %s=%s, but %q declares version %s",
		e.From, e.To, e.Pinned, e.To, e.Declared,
	)
	switch {
	case e.Drift < 0:
		return msg + " (pinned version is behind)"
	case e.Drift > 0:
		return msg + " (pinned version is ahead)"
	default:
		return msg
	}
}

// CircularDependencyError reports a dependency cycle. Path holds the exact
// entries involved, starting and ending on the same name; a self-dependency
// yields a two-element path.
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency: %s", strings.Join(e.Path, " -> "))
}
