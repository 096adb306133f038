package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ShapeBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `
save_file: /tmp/shapes.json
point_radius: 3.5
window:
  width: 1024
  height: 768
defaults:
  shape: Rectangle
  color: blue
log:
  level: debug
  development: true
`
	cfg, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/shapes.json", cfg.SaveFile)
	assert.Equal(t, 3.5, cfg.PointRadius)
	assert.Equal(t, float32(1024), cfg.Window.Width)
	assert.Equal(t, "2D Shape Drawer", cfg.Window.Title, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)

	kind, col := cfg.Selection()
	assert.Equal(t, state.KindRectangle, kind)
	assert.Equal(t, state.ColorBlue, col)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("colour: red\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.PointRadius = 0
	cfg.Defaults.Shape = "Hexagon"
	cfg.Defaults.Color = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point_radius")
	assert.Contains(t, err.Error(), "defaults.shape")
	assert.Contains(t, err.Error(), "defaults.color")
}

func TestCircular(t *testing.T) {
	cfg := New()
	cfg.SaveFile = "elsewhere.json"
	cfg.Defaults.Color = "Green"

	again, err := Parse(strings.NewReader(cfg.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoaderOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("save_file: custom.json\n"), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.SaveFile)
}

func TestLoaderMissingOverride(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}
