package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexforge/crownlands/internal/terrain"
)

func fillGrid(layout Layout, kind terrain.Kind) *Grid {
	g := NewGrid(layout)
	for _, c := range layout.Coords() {
		g.Set(&Tile{Coord: c, Terrain: kind})
	}
	return g
}

func TestSetRejectsOutOfBounds(t *testing.T) {
	g := NewGrid(NewRectLayout(3, 3))
	assert.True(t, g.Set(&Tile{Coord: HexCoord{0, 0}, Terrain: terrain.Grass}))
	assert.False(t, g.Set(&Tile{Coord: HexCoord{3, 0}, Terrain: terrain.Grass}))
	assert.False(t, g.Set(&Tile{Coord: HexCoord{0, -1}, Terrain: terrain.Grass}))
	assert.Equal(t, 1, g.Len())
}

func TestGetAbsentReturnsNil(t *testing.T) {
	g := fillGrid(NewHexLayout(2), terrain.Grass)
	assert.Nil(t, g.Get(HexCoord{5, 5}))
	assert.NotNil(t, g.Get(HexCoord{0, 0}))
}

func TestNeighborsOfEdgeTiles(t *testing.T) {
	g := fillGrid(NewHexLayout(2), terrain.Grass)
	assert.Len(t, g.NeighborsOf(g.Get(HexCoord{0, 0})), 6)
	// A rim tile only has the neighbors that exist.
	assert.Len(t, g.NeighborsOf(g.Get(HexCoord{2, -2})), 3)

	rect := fillGrid(NewRectLayout(3, 3), terrain.Grass)
	assert.Len(t, rect.NeighborsOf(rect.Get(HexCoord{0, 0})), 2)
	assert.Len(t, rect.NeighborsOf(rect.Get(HexCoord{1, 1})), 4)
}

func TestTilesInRange(t *testing.T) {
	g := fillGrid(NewHexLayout(3), terrain.Grass)
	assert.Len(t, g.TilesInRange(HexCoord{0, 0}, 1), 7)
	assert.Len(t, g.TilesInRange(HexCoord{0, 0}, 2), 19)
	// Range clipped at the map edge.
	assert.Len(t, g.TilesInRange(HexCoord{3, 0}, 1), 4)

	rect := fillGrid(NewRectLayout(5, 5), terrain.Grass)
	assert.Len(t, rect.TilesInRange(HexCoord{2, 2}, 1), 5) // Manhattan diamond
	assert.Len(t, rect.TilesInRange(HexCoord{2, 2}, 2), 13)
}

func TestClosestTile(t *testing.T) {
	g := fillGrid(NewRectLayout(4, 4), terrain.Grass)

	got := g.ClosestTile(1.2, 0.9)
	require.NotNil(t, got)
	assert.Equal(t, HexCoord{1, 1}, got.Coord)

	// Exact tie between (0,0) and (1,0): first tile in grid order wins.
	got = g.ClosestTile(0.5, 0)
	assert.Equal(t, HexCoord{0, 0}, got.Coord)
}

func TestFilters(t *testing.T) {
	g := fillGrid(NewRectLayout(3, 3), terrain.Grass)
	g.Get(HexCoord{1, 1}).Terrain = terrain.Mountain
	g.Get(HexCoord{2, 2}).Terrain = terrain.Ocean

	assert.Len(t, g.FilterByTerrain(terrain.Mountain), 1)
	assert.Len(t, g.FilterByTerrain(terrain.Grass), 7)
	assert.Len(t, g.FilterPassable(), 7)
}

func TestStatistics(t *testing.T) {
	g := fillGrid(NewRectLayout(3, 3), terrain.Grass)
	g.Get(HexCoord{0, 0}).Terrain = terrain.Mountain
	g.Get(HexCoord{1, 0}).Resource = &Resource{Kind: terrain.Wheat, Value: 80, MaxValue: 80}

	s := g.Statistics()
	assert.Equal(t, 9, s.Total)
	assert.Equal(t, 8, s.Passable)
	assert.Equal(t, 1, s.Terrain[terrain.Mountain])
	assert.Equal(t, 8, s.Terrain[terrain.Grass])
	assert.Equal(t, 1, s.Resources[terrain.Wheat])
}

func TestTileEffectiveCostAndYield(t *testing.T) {
	hills := &Tile{Coord: HexCoord{0, 0}, Terrain: terrain.Hills}
	assert.Equal(t, 2.0, hills.MoveCost())

	hills.Improvement = terrain.Road
	assert.Equal(t, 1.0, hills.MoveCost(), "road overrides terrain cost")

	mine := &Tile{Coord: HexCoord{1, 0}, Terrain: terrain.Hills, Improvement: terrain.Mine}
	assert.Equal(t, terrain.Yield{Production: 3}, mine.Yield())

	mine.Resource = &Resource{Kind: terrain.Iron, Value: 100, MaxValue: 100}
	assert.Equal(t, terrain.Yield{Production: 4}, mine.Yield())

	// Depleted resources stop contributing.
	mine.Resource.Value = 0
	assert.Equal(t, terrain.Yield{Production: 3}, mine.Yield())
}

func TestResourceDepletionBounds(t *testing.T) {
	r := &Resource{Kind: terrain.Wheat, Value: 10, MaxValue: 80, Regrowth: 15}

	assert.Equal(t, 10.0, r.Deplete(25), "cannot collect more than remains")
	assert.Equal(t, 0.0, r.Value)
	assert.Equal(t, 0.0, r.Deplete(5))

	for i := 0; i < 10; i++ {
		r.Regrow()
	}
	assert.Equal(t, 80.0, r.Value, "regrowth clamps at max")
}

func TestResourceAccess(t *testing.T) {
	open := &Resource{Kind: terrain.Fish, Value: 50, MaxValue: 50}
	assert.True(t, open.CanCollect("anyone"))

	guarded := &Resource{Kind: terrain.Gems, Value: 50, MaxValue: 50, Access: []string{"p1"}}
	assert.True(t, guarded.CanCollect("p1"))
	assert.False(t, guarded.CanCollect("p2"))
}
