package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/statvis"
	"github.com/vdobler/statvis/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".statvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	def := statvis.DefaultOptions()
	assert.Equal(t, config.DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, def.NumDividers, cfg.Widget.NumDividers)
	assert.Equal(t, def.GroupSize, cfg.Widget.GroupSize)
	assert.Equal(t, def.ColorPalette, cfg.Widget.ColorPalette)
	assert.Equal(t, def.BarColor, cfg.Widget.BarColor)
	assert.Equal(t, def.SliderColor, cfg.Widget.SliderColor)
	assert.InDelta(t, def.Padding, cfg.Widget.Padding, 1e-9)
	assert.Equal(t, statvis.FencesMedian, cfg.Widget.Fences)
	assert.Empty(t, cfg.Widget.StartIndices)
	assert.Equal(t, statvis.DefaultTheme, cfg.Widget.Theme)
}

func TestLoadConfig_ValidFile_Unmarshals(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, `output:
  format: json
log:
  level: debug
widget:
  num_dividers: 3
  start_indices: [1, 4, 6]
  bin_count: 12
  color_palette: ["red", "#00ff00", "blue", "black"]
  fences: quartile
  width: 400
`))
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, config.LevelDebug, cfg.Log.Level)
	assert.Equal(t, 3, cfg.Widget.NumDividers)
	assert.Equal(t, []int{1, 4, 6}, cfg.Widget.StartIndices)
	assert.Equal(t, 12, cfg.Widget.BinCount)
	assert.Equal(t, []string{"red", "#00ff00", "blue", "black"}, cfg.Widget.ColorPalette)
	assert.Equal(t, statvis.FencesQuartile, cfg.Widget.Fences)
	assert.InDelta(t, 400.0, cfg.Widget.Width, 1e-9)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("STATVIS_OUTPUT_FORMAT", "yaml")
	t.Setenv("STATVIS_WIDGET_GROUP_SIZE", "4")

	cfg, err := config.LoadConfig(writeConfig(t, "output:\n  format: json\n"))
	require.NoError(t, err)

	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Widget.GroupSize)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"format", "output:\n  format: xml\n", config.ErrInvalidFormat},
		{"level", "log:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"dividers", "widget:\n  num_dividers: -1\n", statvis.ErrInvalidParameter},
		{"starts", "widget:\n  num_dividers: 2\n  start_indices: [3, 1]\n", statvis.ErrInvalidDivider},
		{"colour", "widget:\n  bar_color: mauvish\n", statvis.ErrInvalidParameter},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, tc.content))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
