// Package terrain provides the static catalog of terrain, resource, and
// improvement kinds: passability, movement costs, defense bonuses, and
// yields. Everything here is a read-only table lookup — adding a kind is a
// table edit, not a new code path.
package terrain

import (
	"log/slog"
	"math"
)

// Kind identifies a terrain type.
type Kind uint8

const (
	Grass Kind = iota
	Plains
	Hills
	Forest
	Jungle
	Desert
	Tundra
	Snow
	Mountain
	Coast
	Ocean
	River

	kindCount
)

// Impassable is the movement cost of terrain that land units cannot enter.
var Impassable = math.Inf(1)

// Yield is the per-turn output vector of a tile.
type Yield struct {
	Food       int `json:"food"`
	Production int `json:"production"`
	Gold       int `json:"gold"`
	Science    int `json:"science"`
	Culture    int `json:"culture"`
}

// Add returns the component-wise sum of two yields.
func (y Yield) Add(d Yield) Yield {
	return Yield{
		Food:       y.Food + d.Food,
		Production: y.Production + d.Production,
		Gold:       y.Gold + d.Gold,
		Science:    y.Science + d.Science,
		Culture:    y.Culture + d.Culture,
	}
}

type attributes struct {
	name     string
	passable bool // land traversal; naval and air follow their own rules
	moveCost float64
	defense  int
	yield    Yield
}

var catalog = [kindCount]attributes{
	Grass:    {"Grass", true, 1, 0, Yield{Food: 2}},
	Plains:   {"Plains", true, 1, 0, Yield{Food: 1, Production: 1}},
	Hills:    {"Hills", true, 2, 25, Yield{Production: 2}},
	Forest:   {"Forest", true, 2, 25, Yield{Food: 1, Production: 1}},
	Jungle:   {"Jungle", true, 2, 25, Yield{Food: 1, Culture: 1}},
	Desert:   {"Desert", true, 1, -10, Yield{Gold: 1}},
	Tundra:   {"Tundra", true, 1, 0, Yield{Food: 1}},
	Snow:     {"Snow", true, 1, 0, Yield{}},
	Mountain: {"Mountain", false, 0, 50, Yield{}},
	Coast:    {"Coast", false, 0, 0, Yield{Food: 1, Gold: 1}},
	Ocean:    {"Ocean", false, 0, 0, Yield{Food: 1}},
	River:    {"River", true, 2, -10, Yield{Food: 1, Gold: 1}},
}

// attrs resolves a kind to its catalog entry, falling back to Grass for
// kinds outside the table. The fallback keeps a bad save file or a modded
// kind id from crashing an otherwise valid turn.
func attrs(k Kind) attributes {
	if k >= kindCount {
		slog.Warn("unknown terrain kind, using grass defaults", "kind", uint8(k))
		return catalog[Grass]
	}
	return catalog[k]
}

// Name returns the display name of a terrain kind.
func Name(k Kind) string { return attrs(k).name }

// IsPassable reports whether land units can enter the terrain.
func IsPassable(k Kind) bool { return attrs(k).passable }

// BaseCost returns the movement-point cost of entering the terrain, or
// Impassable when land units cannot enter it at all.
func BaseCost(k Kind) float64 {
	a := attrs(k)
	if !a.passable {
		return Impassable
	}
	return a.moveCost
}

// DefenseBonus returns the combat defense modifier of the terrain, in
// percent. Negative values (open desert, river crossings) penalize the
// defender.
func DefenseBonus(k Kind) int { return attrs(k).defense }

// BaseYield returns the unimproved yield of the terrain.
func BaseYield(k Kind) Yield { return attrs(k).yield }

// IsWater reports whether the terrain is traversable by naval units.
func IsWater(k Kind) bool { return k == Coast || k == Ocean }
