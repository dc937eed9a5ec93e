package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releaseforge/domain"
	"github.com/rios0rios0/releaseforge/parser"
	testdoubles "github.com/rios0rios0/releaseforge/test"
	"github.com/rios0rios0/releaseforge/test/entitybuilders"
)

func TestInterfaceCompliance(t *testing.T) {
	t.Parallel()

	t.Run("should satisfy Codec interface with a dummy", func(t *testing.T) {
		t.Parallel()

		// given
		var codec parser.Codec = &testdoubles.DummyCodec{}

		// then
		assert.NotNil(t, codec)
		assert.Implements(t, (*parser.Codec)(nil), codec)
	})

	t.Run("should satisfy Codec interface with a spy", func(t *testing.T) {
		t.Parallel()

		// given
		var codec parser.Codec = &testdoubles.SpyCodec{CodecFormat: "hcl"}

		// then
		assert.NotNil(t, codec)
		assert.Equal(t, parser.Format("hcl"), codec.Format())
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should decode canonical text", func(t *testing.T) {
		t.Parallel()

		// given
		text := `repository "consensus" {
  version = "0.1.0"
}`

		// when
		manifest, err := parser.Parse(text)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"consensus"}, manifest.Names())
	})

	t.Run("should surface syntax errors", func(t *testing.T) {
		t.Parallel()

		// when
		manifest, err := parser.Parse("repository {{")

		// then
		assert.Nil(t, manifest)

		var syntaxErr *domain.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
	})
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	t.Run("should render canonical text", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entitybuilders.NewManifestBuilder().WithEntry(
			entitybuilders.NewEntryBuilder().WithName("consensus").WithVersion("0.1.0").BuildEntry(),
		).BuildManifest()

		// when
		text, err := parser.Serialize(manifest)

		// then
		require.NoError(t, err)
		assert.Contains(t, text, `repository "consensus"`)
	})
}

func TestCodecRoundTrips(t *testing.T) {
	t.Parallel()

	manifest := entitybuilders.NewManifestBuilder().WithEntries(
		entitybuilders.NewEntryBuilder().WithName("consensus").WithVersion("0.1.0").
			WithGitTag("v0.1.0").BuildEntry(),
		entitybuilders.NewEntryBuilder().WithName("protocol").WithVersion("0.2.0").
			Requiring("consensus").BuildEntry(),
		entitybuilders.NewEntryBuilder().WithName("node").WithVersion("1.0.0-rc.1").
			Requiring("protocol").RequiringPinned("consensus", "0.1.0").BuildEntry(),
	).BuildManifest()

	t.Run("should decode each codec's own output into an equal manifest", func(t *testing.T) {
		t.Parallel()

		for _, codec := range parser.DefaultRegistry().All() {
			// when
			text, serializeErr := codec.Serialize(manifest)
			reparsed, parseErr := codec.Parse(text)

			// then
			require.NoError(t, serializeErr, "format %s", codec.Format())
			require.NoError(t, parseErr, "format %s", codec.Format())
			assert.Equal(t, manifest.Entries(), reparsed.Entries(), "format %s", codec.Format())
		}
	})

	t.Run("should decode the same manifest from either format", func(t *testing.T) {
		t.Parallel()

		// given
		hclCodec := parser.NewHCLCodec()
		yamlCodec := parser.NewYAMLCodec()

		// when the manifest crosses formats
		yamlText, yamlErr := yamlCodec.Serialize(manifest)
		require.NoError(t, yamlErr)
		fromYAML, parseErr := yamlCodec.Parse(yamlText)
		require.NoError(t, parseErr)

		hclText, hclErr := hclCodec.Serialize(fromYAML)
		require.NoError(t, hclErr)
		fromHCL, reparseErr := hclCodec.Parse(hclText)
		require.NoError(t, reparseErr)

		// then nothing is lost in either direction
		assert.Equal(t, manifest.Entries(), fromHCL.Entries())
	})

	t.Run("should keep a round-tripped manifest valid", func(t *testing.T) {
		t.Parallel()

		// given
		text, serializeErr := parser.Serialize(manifest)
		require.NoError(t, serializeErr)

		// when
		reparsed, parseErr := parser.Parse(text)
		require.NoError(t, parseErr)
		report := reparsed.Validate()

		// then
		assert.True(t, report.IsValid())
		assert.Empty(t, report.Errors)
	})
}
