package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releaseforge/domain"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	t.Run("should include the line in a syntax error when known", func(t *testing.T) {
		t.Parallel()

		// given
		withLine := &domain.SyntaxError{Line: 7, Detail: "unexpected token"}
		withoutLine := &domain.SyntaxError{Detail: "unexpected token"}

		// then
		assert.Equal(t, "syntax error on line 7: unexpected token", withLine.Error())
		assert.Equal(t, "syntax error: unexpected token", withoutLine.Error())
	})

	t.Run("should name the offender in structural errors", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Equal(t,
			`duplicate entry "consensus"`,
			(&domain.DuplicateEntryError{Name: "consensus"}).Error(),
		)
		assert.Equal(t,
			`invalid entry name ""`,
			(&domain.InvalidNameError{}).Error(),
		)
		assert.Equal(t,
			`entry "node" requires "ghost", which is not defined`,
			(&domain.MissingDependencyError{From: "node", To: "ghost"}).Error(),
		)
	})

	t.Run("should spell out the full cycle path", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.CircularDependencyError{Path: []string{"a", "b", "c", "a"}}

		// then
		assert.Equal(t, "circular dependency: a -> b -> c -> a", err.Error())
	})

	t.Run("should describe a version failure with and without its entry", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("invalid semantic version")
		scoped := &domain.VersionFormatError{Name: "broken", Input: "1.2", Err: cause}
		bare := &domain.VersionFormatError{Input: "1.2", Err: cause}

		// then
		assert.Equal(t, `entry "broken" has invalid version "1.2": invalid semantic version`, scoped.Error())
		assert.Equal(t, `invalid version "1.2": invalid semantic version`, bare.Error())
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", scoped), cause)
	})

	t.Run("should describe pin drift in both directions", func(t *testing.T) {
		t.Parallel()

		// given
		behind := &domain.RequirementConflictError{
			From: "protocol", To: "consensus", Pinned: "0.1.0", Declared: "0.2.0", Drift: -1,
		}
		ahead := &domain.RequirementConflictError{
			From: "protocol", To: "consensus", Pinned: "0.3.0", Declared: "0.2.0", Drift: 1,
		}

		// then
		assert.Contains(t, behind.Error(), "pinned version is behind")
		assert.Contains(t, ahead.Error(), "pinned version is ahead")
	})

	t.Run("should stay matchable through wrapping", func(t *testing.T) {
		t.Parallel()

		// given
		wrapped := fmt.Errorf("resolving: %w", &domain.MissingDependencyError{From: "a", To: "b"})

		// when
		var missingErr *domain.MissingDependencyError
		ok := errors.As(wrapped, &missingErr)

		// then
		require.True(t, ok)
		assert.Equal(t, "a", missingErr.From)
	})
}
