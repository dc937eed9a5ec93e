package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Warning is a non-fatal observation about a manifest. Warnings never make
// a manifest invalid.
type Warning interface {
	Warning() string
}

// TagMismatchWarning reports a git tag that does not follow the
// "v" + version convention.
type TagMismatchWarning struct {
	Name    string
	GitTag  string
	Version string
}

func (w TagMismatchWarning) Warning() string {
	return fmt.Sprintf(
		"entry %q tags its release %q, which does not match version %s",
		w.Name, w.GitTag, w.Version,
	)
}

// IsolatedEntryWarning reports an entry that declares no dependencies and
// has no dependents. Isolated entries are legal; the warning exists so a
// typo that orphans an entry does not go unnoticed.
type IsolatedEntryWarning struct {
	Name string
}

func (w IsolatedEntryWarning) Warning() string {
	return fmt.Sprintf("entry %q is isolated: nothing requires it and it requires nothing", w.Name)
}

// ValidationResult aggregates every problem found in one manifest pass.
// Errors and Warnings are in canonical order: lexicographic by offending
// entry, then by kind, so repeated runs over the same manifest produce
// byte-identical reports.
type ValidationResult struct {
	Errors   []error
	Warnings []Warning
}

// IsValid reports whether the manifest can be released as-is. Only errors
// count; warnings never affect validity.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate runs every check over the whole manifest and collects all
// findings into one result, never stopping at the first problem: version
// grammar per entry, requirement resolution, requirement pins against
// declared versions, dependency cycles, git tag convention, and isolated
// entries. A manifest that fails one check is still run through the rest,
// so one report covers everything a release manager must fix.
func (m *Manifest) Validate() ValidationResult {
	var result ValidationResult

	for _, e := range m.entries {
		if _, err := ValidateVersion(e.Version); err != nil {
			var formatErr *VersionFormatError
			if errors.As(err, &formatErr) {
				formatErr.Name = e.Name
				result.Errors = append(result.Errors, formatErr)
			}
		}
		if e.GitTag != "" && e.GitTag != "v"+e.Version {
			result.Warnings = append(result.Warnings, TagMismatchWarning{
				Name:    e.Name,
				GitTag:  e.GitTag,
				Version: e.Version,
			})
		}
	}

	g := m.graph()
	for _, edge := range g.Dangling() {
		result.Errors = append(result.Errors, &MissingDependencyError{
			From: edge.From,
			To:   edge.To,
		})
	}

	for _, e := range m.entries {
		for _, req := range e.Requires {
			if req.Pin == "" {
				continue
			}
			target, ok := m.Get(req.Name)
			if !ok {
				continue // already reported as a missing dependency
			}
			if drift := versionDrift(req.Pin, target.Version); drift != 0 {
				result.Errors = append(result.Errors, &RequirementConflictError{
					From:     e.Name,
					To:       req.Name,
					Pinned:   req.Pin,
					Declared: target.Version,
					Drift:    drift,
				})
			}
		}
	}

	for _, path := range g.FindCycles() {
		result.Errors = append(result.Errors, &CircularDependencyError{Path: path})
	}

	for _, e := range m.entries {
		if len(e.Requires) == 0 && len(g.Dependents(e.Name)) == 0 && m.Len() > 1 {
			result.Warnings = append(result.Warnings, IsolatedEntryWarning{Name: e.Name})
		}
	}

	sortErrors(result.Errors)
	sortWarnings(result.Warnings)
	return result
}

// Error kinds in canonical report order.
const (
	kindVersionFormat = iota
	kindMissingDependency
	kindRequirementConflict
	kindCircularDependency
	kindOther
)

// errorSortKey maps an error onto its canonical position: the entry it
// blames, its kind, and a tie-break within the kind.
func errorSortKey(err error) (entry string, kind int, tieBreak string) {
	switch e := err.(type) {
	case *VersionFormatError:
		return e.Name, kindVersionFormat, e.Input
	case *MissingDependencyError:
		return e.From, kindMissingDependency, e.To
	case *RequirementConflictError:
		return e.From, kindRequirementConflict, e.To
	case *CircularDependencyError:
		first := ""
		if len(e.Path) > 0 {
			first = e.Path[0]
		}
		return first, kindCircularDependency, strings.Join(e.Path, " ")
	default:
		return "", kindOther, err.Error()
	}
}

func sortErrors(errs []error) {
	sort.SliceStable(errs, func(i, j int) bool {
		iEntry, iKind, iTie := errorSortKey(errs[i])
		jEntry, jKind, jTie := errorSortKey(errs[j])
		if iEntry != jEntry {
			return iEntry < jEntry
		}
		if iKind != jKind {
			return iKind < jKind
		}
		return iTie < jTie
	})
}

func warningSortKey(w Warning) (entry string, text string) {
	switch v := w.(type) {
	case TagMismatchWarning:
		return v.Name, v.Warning()
	case IsolatedEntryWarning:
		return v.Name, v.Warning()
	default:
		return "", w.Warning()
	}
}

func sortWarnings(warnings []Warning) {
	sort.SliceStable(warnings, func(i, j int) bool {
		iEntry, iText := warningSortKey(warnings[i])
		jEntry, jText := warningSortKey(warnings[j])
		if iEntry != jEntry {
			return iEntry < jEntry
		}
		return iText < jText
	})
}
