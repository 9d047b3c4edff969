package world

import "github.com/hexforge/crownlands/internal/terrain"

// Resource is a depletable deposit attached to a tile.
type Resource struct {
	Kind     terrain.ResourceKind `json:"kind"`
	Value    float64              `json:"value"`
	MaxValue float64              `json:"max_value"`
	Regrowth float64              `json:"regrowth"` // units restored per turn
	// Access lists player ids permitted to collect. Empty means open to all.
	Access []string `json:"access,omitempty"`
}

// CanCollect reports whether the player may harvest this resource.
func (r *Resource) CanCollect(player string) bool {
	if len(r.Access) == 0 {
		return true
	}
	for _, id := range r.Access {
		if id == player {
			return true
		}
	}
	return false
}

// Deplete removes up to amount from the deposit and returns what was
// actually collected. Value never leaves [0, MaxValue].
func (r *Resource) Deplete(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if amount > r.Value {
		amount = r.Value
	}
	r.Value -= amount
	return amount
}

// Regrow restores one turn of regrowth, clamped to MaxValue.
func (r *Resource) Regrow() {
	r.Value += r.Regrowth
	if r.Value > r.MaxValue {
		r.Value = r.MaxValue
	}
}

// Tile is a single map cell. Tiles are owned exclusively by the Grid; unit
// and city references are weak (lookup ids only — entity lifetimes belong to
// the registry layer, never to the map).
type Tile struct {
	Coord       HexCoord                `json:"coord"`
	Terrain     terrain.Kind            `json:"terrain"`
	Resource    *Resource               `json:"resource,omitempty"`
	Improvement terrain.ImprovementKind `json:"improvement,omitempty"`
	UnitID      string                  `json:"unit_id,omitempty"`
	CityID      string                  `json:"city_id,omitempty"`
	Owner       string                  `json:"owner,omitempty"`

	// Environmental fields set during generation and kept for rendering
	// and later map edits.
	Elevation   float64 `json:"elevation"`
	Rainfall    float64 `json:"rainfall"`
	Temperature float64 `json:"temperature"`
}

// Passable reports whether land units can enter the tile.
func (t *Tile) Passable() bool {
	return terrain.IsPassable(t.Terrain)
}

// MoveCost returns the effective movement cost of entering the tile:
// the terrain base cost unless an improvement overrides it. Always derived,
// never stored, so it cannot desync from the tile's state.
func (t *Tile) MoveCost() float64 {
	if !terrain.IsPassable(t.Terrain) {
		return terrain.Impassable
	}
	if cost, ok := terrain.ImprovementCostOverride(t.Improvement); ok {
		return cost
	}
	return terrain.BaseCost(t.Terrain)
}

// Yield returns the effective yield: terrain base plus resource and
// improvement modifiers. A depleted resource contributes nothing.
func (t *Tile) Yield() terrain.Yield {
	y := terrain.BaseYield(t.Terrain)
	if t.Resource != nil && t.Resource.Value > 0 {
		y = y.Add(terrain.ResourceYieldModifier(t.Resource.Kind))
	}
	y = y.Add(terrain.ImprovementYieldModifier(t.Improvement))
	return y
}

// DefenseBonus returns the combat defense modifier of the tile in percent.
func (t *Tile) DefenseBonus() int {
	return terrain.DefenseBonus(t.Terrain) + terrain.ImprovementDefenseBonus(t.Improvement)
}
