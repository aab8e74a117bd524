package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyiter/options"
)

func TestApply(t *testing.T) {
	t.Parallel()

	base := options.Options{}
	assert.False(t, options.Apply(base).Inherit)
	assert.True(t, options.Apply(base, options.Inherit(true)).Inherit)
	assert.False(t, options.Apply(options.Options{Inherit: true}, nil, options.Inherit(false)).Inherit)

	// the base is passed by value
	options.Apply(base, options.Inherit(true))
	assert.False(t, base.Inherit)
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		c, err := options.ParseConfig([]byte(``))
		require.NoError(t, err)
		assert.Equal(t, options.DefaultConfig(), *c)
		assert.False(t, c.Inherit)
		assert.Equal(t, "warning", c.Diagnostics.Level)
		assert.Equal(t, options.FormatText, c.Diagnostics.Format)
	})

	t.Run("full", func(t *testing.T) {
		t.Parallel()

		c, err := options.ParseConfig([]byte(`
inherit: true
diagnostics:
  level: " Debug "
  format: JSON
`))
		require.NoError(t, err)
		assert.True(t, c.Inherit)
		assert.Equal(t, "debug", c.Diagnostics.Level)
		assert.Equal(t, options.FormatJSON, c.Diagnostics.Format)
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()

		_, err := options.ParseConfig([]byte("diagnostics: {format: xml}"))
		assert.ErrorContains(t, err, `got "xml"`)
	})

	t.Run("bad yaml", func(t *testing.T) {
		t.Parallel()

		_, err := options.ParseConfig([]byte("inherit: ["))
		assert.ErrorContains(t, err, "failed to parse config YAML")
	})

	t.Run("round trip keeps inline options", func(t *testing.T) {
		t.Parallel()

		c := options.DefaultConfig()
		c.Inherit = true
		data, err := options.MarshalConfig(&c)
		require.NoError(t, err)
		assert.Contains(t, string(data), "inherit: true")

		back, err := options.ParseConfig(data)
		require.NoError(t, err)
		assert.Equal(t, c, *back)
	})
}
