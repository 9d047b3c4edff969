package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexforge/crownlands/internal/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "map:\n  seed: 9\n"))
	require.NoError(t, err)

	assert.Equal(t, "hex", cfg.Map.Shape)
	assert.Equal(t, 22, cfg.Map.Radius)
	assert.Equal(t, int64(9), cfg.Map.Seed)
	assert.Equal(t, 0.25, cfg.Map.SeaLevel)
	assert.Equal(t, "data/crownlands.db", cfg.Snapshot.Path)
	assert.Equal(t, 0, cfg.API.Port, "api disabled unless configured")
}

func TestLoadRectMap(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
map:
  shape: rect
  width: 20
  height: 15
  seed: 3
api:
  port: 8080
`))
	require.NoError(t, err)

	gen, err := cfg.GenConfig()
	require.NoError(t, err)
	assert.Equal(t, world.NewRectLayout(20, 15), gen.Layout)
	assert.Equal(t, int64(3), gen.Seed)
	assert.Equal(t, 8080, cfg.API.Port)
}

func TestGenConfigRejectsUnknownShape(t *testing.T) {
	cfg, err := Load(writeConfig(t, "map:\n  shape: torus\n"))
	require.NoError(t, err)
	_, err = cfg.GenConfig()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultIsUsable(t *testing.T) {
	gen, err := Default().GenConfig()
	require.NoError(t, err)
	assert.Equal(t, world.NewHexLayout(22), gen.Layout)
}
