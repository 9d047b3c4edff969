// Package path provides the movement-cost function and the A* pathfinder.
// Both take the grid as an explicit dependency and are pure reads over it —
// a query can be repeated any number of times (move previews) with no side
// effects.
package path

import (
	"math"

	"github.com/hexforge/crownlands/internal/terrain"
	"github.com/hexforge/crownlands/internal/world"
)

// MoveClass is a mover's traversal class.
type MoveClass uint8

const (
	Land MoveClass = iota
	Naval
	Air
)

// ClassName returns the display name of a traversal class.
func ClassName(c MoveClass) string {
	switch c {
	case Naval:
		return "naval"
	case Air:
		return "air"
	default:
		return "land"
	}
}

// EdgeCost returns the movement-point cost of stepping from one tile onto an
// adjacent one, or +Inf when the destination is impassable for the class.
// It is evaluated fresh per edge — improvements can change between calls, so
// nothing here is cached.
//
//   - air ignores terrain entirely: every step costs 1.
//   - naval moves on coast and ocean at cost 1 and cannot enter land.
//   - land pays the destination tile's effective cost; the origin tile does
//     not matter.
//
// Finite land costs below 1 are clamped up to 1 so the distance heuristic
// stays admissible.
func EdgeCost(from, to *world.Tile, class MoveClass) float64 {
	if to == nil {
		return terrain.Impassable
	}
	if from != nil && from.Coord == to.Coord {
		return 0
	}
	switch class {
	case Air:
		return 1
	case Naval:
		if terrain.IsWater(to.Terrain) {
			return 1
		}
		return terrain.Impassable
	default:
		cost := to.MoveCost()
		if math.IsInf(cost, 1) {
			return terrain.Impassable
		}
		if cost < 1 {
			cost = 1
		}
		return cost
	}
}

// enterable reports whether a tile can ever be occupied by the class. Used
// by the pathfinder to reject impossible destinations before searching.
func enterable(t *world.Tile, class MoveClass) bool {
	if t == nil {
		return false
	}
	switch class {
	case Air:
		return true
	case Naval:
		return terrain.IsWater(t.Terrain)
	default:
		return t.Passable()
	}
}
