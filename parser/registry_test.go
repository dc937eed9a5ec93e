package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releaseforge/parser"
	testdoubles "github.com/rios0rios0/releaseforge/test"
)

func TestCodecRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a codec by format", func(t *testing.T) {
		t.Parallel()

		// given
		reg := parser.NewRegistry()
		stub := &testdoubles.SpyCodec{CodecFormat: "test-format"}
		reg.Register(stub)

		// when
		c := reg.Get("test-format")

		// then
		assert.NotNil(t, c)
		assert.Equal(t, parser.Format("test-format"), c.Format())
	})

	t.Run("should return nil for unknown format", func(t *testing.T) {
		t.Parallel()

		// given
		reg := parser.NewRegistry()

		// when
		c := reg.Get("nonexistent")

		// then
		assert.Nil(t, c)
	})

	t.Run("should list all registered codecs ordered by format", func(t *testing.T) {
		t.Parallel()

		// given
		reg := parser.NewRegistry()
		reg.Register(&testdoubles.SpyCodec{CodecFormat: "yaml"})
		reg.Register(&testdoubles.SpyCodec{CodecFormat: "hcl"})

		// when
		all := reg.All()

		// then
		assert.Len(t, all, 2)
		assert.Equal(t, parser.Format("hcl"), all[0].Format())
		assert.Equal(t, parser.Format("yaml"), all[1].Format())
	})

	t.Run("should list registered formats sorted", func(t *testing.T) {
		t.Parallel()

		// given
		reg := parser.NewRegistry()
		reg.Register(&testdoubles.SpyCodec{CodecFormat: "yaml"})
		reg.Register(&testdoubles.SpyCodec{CodecFormat: "hcl"})

		// when
		formats := reg.Formats()

		// then
		assert.Equal(t, []parser.Format{"hcl", "yaml"}, formats)
	})

	t.Run("should return empty lists for empty registry", func(t *testing.T) {
		t.Parallel()

		// given
		reg := parser.NewRegistry()

		// when
		all := reg.All()
		formats := reg.Formats()

		// then
		assert.Empty(t, all)
		assert.Empty(t, formats)
	})

	t.Run("should overwrite codec with same format", func(t *testing.T) {
		t.Parallel()

		// given
		reg := parser.NewRegistry()
		first := &testdoubles.SpyCodec{CodecFormat: "hcl"}
		second := &testdoubles.SpyCodec{CodecFormat: "hcl"}
		reg.Register(first)
		reg.Register(second)

		// when
		all := reg.All()

		// then
		assert.Len(t, all, 1)
		assert.Same(t, second, all[0])
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should carry the built-in codecs", func(t *testing.T) {
		t.Parallel()

		// when
		reg := parser.DefaultRegistry()

		// then
		assert.Equal(t, []parser.Format{parser.FormatHCL, parser.FormatYAML}, reg.Formats())
		require.NotNil(t, reg.Get(parser.FormatHCL))
		require.NotNil(t, reg.Get(parser.FormatYAML))
	})

	t.Run("should return a fresh registry on every call", func(t *testing.T) {
		t.Parallel()

		// given
		first := parser.DefaultRegistry()
		second := parser.DefaultRegistry()

		// when one registry gains a codec
		first.Register(&testdoubles.SpyCodec{CodecFormat: "extra"})

		// then the other is untouched
		assert.NotSame(t, first, second)
		assert.NotNil(t, first.Get("extra"))
		assert.Nil(t, second.Get("extra"))
	})
}
