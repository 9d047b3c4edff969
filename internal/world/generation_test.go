package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexforge/crownlands/internal/terrain"
)

func TestGenerateFillsEveryCoordinate(t *testing.T) {
	cfg := SmallTestConfig()
	g := Generate(cfg)

	coords := cfg.Layout.Coords()
	require.Equal(t, len(coords), g.Len())
	for _, c := range coords {
		require.NotNil(t, g.Get(c), "missing tile at %v", c)
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	cfg := SmallTestConfig()
	a := Generate(cfg)
	b := Generate(cfg)

	require.Equal(t, a.Len(), b.Len())
	for _, c := range cfg.Layout.Coords() {
		ta, tb := a.Get(c), b.Get(c)
		assert.Equal(t, ta.Terrain, tb.Terrain, "terrain differs at %v", c)
		if ta.Resource == nil {
			assert.Nil(t, tb.Resource, "resource differs at %v", c)
		} else {
			require.NotNil(t, tb.Resource, "resource differs at %v", c)
			assert.Equal(t, ta.Resource.Kind, tb.Resource.Kind)
		}
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Layout = NewHexLayout(8)
	cfg.Seed = 1
	a := Generate(cfg)
	cfg.Seed = 2
	b := Generate(cfg)

	same := 0
	for _, c := range cfg.Layout.Coords() {
		if a.Get(c).Terrain == b.Get(c).Terrain {
			same++
		}
	}
	assert.Less(t, same, a.Len(), "different seeds should produce different maps")
}

func TestGenerateCoastBordersLand(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Layout = NewHexLayout(10)
	cfg.Seed = 7
	g := Generate(cfg)

	// Every remaining ocean tile has only water neighbors; land-adjacent
	// water was converted to coast.
	for _, c := range g.Coords() {
		tile := g.Get(c)
		if tile.Terrain != terrain.Ocean {
			continue
		}
		for _, nb := range g.NeighborsOf(tile) {
			assert.True(t, terrain.IsWater(nb.Terrain),
				"ocean at %v touches land at %v", c, nb.Coord)
		}
	}
}

func TestGeneratedResourcesMatchTerrain(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Layout = NewHexLayout(10)
	cfg.Seed = 7
	g := Generate(cfg)

	found := 0
	for _, c := range g.Coords() {
		tile := g.Get(c)
		if tile.Resource == nil {
			continue
		}
		found++
		assert.True(t, terrain.ResourceCompatible(tile.Terrain, tile.Resource.Kind),
			"%s on %s at %v", terrain.ResourceName(tile.Resource.Kind),
			terrain.Name(tile.Terrain), c)
		assert.GreaterOrEqual(t, tile.Resource.Value, 0.0)
		assert.LessOrEqual(t, tile.Resource.Value, tile.Resource.MaxValue)
	}
	assert.Greater(t, found, 0, "a radius-10 map should have some deposits")
}

func TestGenerateRectLayout(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Layout = NewRectLayout(12, 9)
	cfg.Seed = 3
	g := Generate(cfg)

	assert.Equal(t, 12*9, g.Len())
	stats := g.Statistics()
	assert.Greater(t, stats.Passable, 0)
}
