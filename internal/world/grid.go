package world

import (
	"fmt"

	"github.com/hexforge/crownlands/internal/terrain"
)

// Grid owns every tile of the map, keyed by coordinate. It also records
// insertion order so that scans, statistics, and tie-breaks are reproducible
// run to run (Go map iteration order is randomized).
type Grid struct {
	layout Layout
	tiles  map[HexCoord]*Tile
	order  []HexCoord
}

// NewGrid creates an empty grid with the given layout.
func NewGrid(layout Layout) *Grid {
	return &Grid{
		layout: layout,
		tiles:  make(map[HexCoord]*Tile),
	}
}

// Layout returns the map profile.
func (g *Grid) Layout() Layout { return g.layout }

// Get returns the tile at the given coordinate, or nil when absent.
func (g *Grid) Get(coord HexCoord) *Tile {
	return g.tiles[coord]
}

// Set places a tile at its coordinate. Returns false when the coordinate is
// outside the map bounds; the grid is left unchanged in that case.
func (g *Grid) Set(t *Tile) bool {
	if !g.layout.Contains(t.Coord) {
		return false
	}
	if _, exists := g.tiles[t.Coord]; !exists {
		g.order = append(g.order, t.Coord)
	}
	g.tiles[t.Coord] = t
	return true
}

// Len returns the number of tiles in the grid.
func (g *Grid) Len() int { return len(g.tiles) }

// Coords returns the grid's coordinates in insertion order. The returned
// slice is shared; callers must not modify it.
func (g *Grid) Coords() []HexCoord { return g.order }

// NeighborsOf returns the adjacent tiles that exist in the grid, in
// direction order. Edge tiles have fewer than the full neighbor count.
func (g *Grid) NeighborsOf(t *Tile) []*Tile {
	dirs := g.layout.Directions()
	out := make([]*Tile, 0, len(dirs))
	for _, d := range dirs {
		if nb := g.tiles[t.Coord.Add(d)]; nb != nil {
			out = append(out, nb)
		}
	}
	return out
}

// TilesInRange returns the existing tiles within the given step distance of
// center, including the center tile itself, in deterministic order.
func (g *Grid) TilesInRange(center HexCoord, radius int) []*Tile {
	coords := g.layout.InRange(center, radius)
	out := make([]*Tile, 0, len(coords))
	for _, c := range coords {
		if t := g.tiles[c]; t != nil {
			out = append(out, t)
		}
	}
	return out
}

// ClosestTile returns the tile whose world-space position is nearest to the
// given point. Ties go to the first tile encountered in grid order. Returns
// nil only for an empty grid.
func (g *Grid) ClosestTile(x, z float64) *Tile {
	var best *Tile
	bestDist := 0.0
	for _, c := range g.order {
		tx, tz := g.layout.ToPixel(c)
		dx, dz := tx-x, tz-z
		d := dx*dx + dz*dz
		if best == nil || d < bestDist {
			best = g.tiles[c]
			bestDist = d
		}
	}
	return best
}

// FilterByTerrain returns all tiles of the given terrain kind in grid order.
func (g *Grid) FilterByTerrain(kind terrain.Kind) []*Tile {
	var out []*Tile
	for _, c := range g.order {
		if t := g.tiles[c]; t.Terrain == kind {
			out = append(out, t)
		}
	}
	return out
}

// FilterPassable returns all land-passable tiles in grid order.
func (g *Grid) FilterPassable() []*Tile {
	var out []*Tile
	for _, c := range g.order {
		if t := g.tiles[c]; t.Passable() {
			out = append(out, t)
		}
	}
	return out
}

// Stats summarizes the map composition.
type Stats struct {
	Total     int                          `json:"total"`
	Passable  int                          `json:"passable"`
	Terrain   map[terrain.Kind]int         `json:"terrain"`
	Resources map[terrain.ResourceKind]int `json:"resources"`
}

// Statistics aggregates terrain and resource counts in a single pass.
func (g *Grid) Statistics() Stats {
	s := Stats{
		Terrain:   make(map[terrain.Kind]int),
		Resources: make(map[terrain.ResourceKind]int),
	}
	for _, c := range g.order {
		t := g.tiles[c]
		s.Total++
		s.Terrain[t.Terrain]++
		if t.Passable() {
			s.Passable++
		}
		if t.Resource != nil {
			s.Resources[t.Resource.Kind]++
		}
	}
	return s
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(shape=%d, tiles=%d)", g.layout.Shape, g.Len())
}
