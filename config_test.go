package gekko

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 800
  title: Triangle
clear_color: [0.1, 0.2, 0.3]
debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset fields keep their default")
	assert.Equal(t, "Triangle", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, cfg.ClearColorVec())
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "window:\n  width: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")

	_, err = LoadConfig(writeConfig(t, "clear_color: [2, 0, 0]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear_color[0]")

	_, err = LoadConfig(writeConfig(t, "window: [not, a, map]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
