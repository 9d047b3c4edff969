// Package world provides the coordinate model, tiles, and the map grid.
// The canonical coordinate type is axial (q, r) with the third cube
// coordinate derived as s = -q - r; the rectangular grid variant reuses the
// same type with q as column and r as row (see Layout).
package world

import (
	"fmt"
	"math"
)

// HexCoord represents a position on the grid using axial coordinates.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns the component-wise sum of two coordinates.
func (h HexCoord) Add(o HexCoord) HexCoord {
	return HexCoord{Q: h.Q + o.Q, R: h.R + o.R}
}

// Scale multiplies a coordinate vector by k.
func (h HexCoord) Scale(k int) HexCoord {
	return HexCoord{Q: h.Q * k, R: h.R * k}
}

// FromCube builds a coordinate from explicit cube components. The zero-sum
// invariant is a caller contract; violating it is a programming error, not a
// game condition, so it panics rather than returning an error.
func FromCube(q, r, s int) HexCoord {
	if q+r+s != 0 {
		panic(fmt.Sprintf("world: cube coordinate (%d,%d,%d) violates q+r+s=0", q, r, s))
	}
	return HexCoord{Q: q, R: r}
}

// HexDirections defines the six neighbor offsets in axial coordinates, in
// fixed order: E, NE, NW, W, SW, SE. The order is part of the contract —
// neighbor iteration elsewhere relies on it for reproducible results.
var HexDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// RectDirections defines the four neighbor offsets for rectangular grids,
// in fixed order: E, N, W, S.
var RectDirections = [4]HexCoord{
	{Q: 1, R: 0},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates in direction order.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates: the maximum of
// the absolute cube-coordinate differences, which equals both
// (|dq|+|dr|+|ds|)/2 and the minimum number of single-step moves on an
// unobstructed hex grid.
func Distance(a, b HexCoord) int {
	dq := absInt(a.Q - b.Q)
	dr := absInt(a.R - b.R)
	ds := absInt(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// ManhattanDistance returns the 4-neighbor grid distance between two
// coordinates interpreted as (column, row).
func ManhattanDistance(a, b HexCoord) int {
	return absInt(a.Q-b.Q) + absInt(a.R-b.R)
}

// Round converts fractional cube coordinates to the nearest valid hex.
// Rounding each component independently can break q+r+s=0, so the component
// with the largest rounding error is recomputed from the other two.
func Round(qf, rf, sf float64) HexCoord {
	q := math.Round(qf)
	r := math.Round(rf)
	s := math.Round(sf)

	dq := math.Abs(q - qf)
	dr := math.Abs(r - rf)
	ds := math.Abs(s - sf)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return FromCube(int(q), int(r), int(s))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
