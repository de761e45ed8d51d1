package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/pkx/pkg/pkm"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.True(t, config.Decode.FallbackToDefault)
	assert.Equal(t, []string{"pk6", "pk7", "pk8", "pa8", "pk9"}, config.Decode.Formats)
	assert.Equal(t, "info", config.Logging.Level)
	assert.True(t, config.Metrics.Enabled)
	assert.Equal(t, "pkx", config.Metrics.Namespace)
	require.NoError(t, config.Validate())
}

func TestParse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		config, err := Parse([]byte(`
decode:
  fallback_to_default: false
  formats: [pk7, PK9]
logging:
  level: debug
metrics:
  enabled: false
  namespace: ""
`))
		require.NoError(t, err)

		assert.False(t, config.Decode.FallbackToDefault)
		formats, err := config.Decode.EnabledFormats()
		require.NoError(t, err)
		assert.Equal(t, []pkm.Format{pkm.FormatPK7, pkm.FormatPK9}, formats)

		level, err := config.Logging.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
		assert.False(t, config.Metrics.Enabled)
	})

	t.Run("partial document keeps defaults", func(t *testing.T) {
		config, err := Parse([]byte("logging:\n  level: warn\n"))
		require.NoError(t, err)

		assert.Equal(t, "warn", config.Logging.Level)
		assert.True(t, config.Decode.FallbackToDefault)
		assert.Len(t, config.Decode.Formats, 5)
		assert.Equal(t, "pkx", config.Metrics.Namespace)
	})

	t.Run("empty document", func(t *testing.T) {
		config, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("decode: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("decode:\n  fallback: true\n"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"empty level", func(c *Config) { c.Logging.Level = "" }},
		{"no formats", func(c *Config) { c.Decode.Formats = nil }},
		{"unknown format", func(c *Config) { c.Decode.Formats = []string{"pk7", "pk5"} }},
		{"metrics without namespace", func(c *Config) { c.Metrics.Namespace = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}

	config := DefaultConfig()
	config.Decode.Formats = []string{"pk5"}
	assert.ErrorIs(t, config.Validate(), pkm.ErrUnknownFormat)
}

func TestMarshalRoundTrip(t *testing.T) {
	config := DefaultConfig()
	config.Logging.Level = "error"
	config.Decode.Formats = []string{"pa8"}

	data, err := config.Marshal()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "decode")
	assert.Contains(t, raw, "metrics")

	loaded, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
