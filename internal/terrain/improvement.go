package terrain

import "log/slog"

// ImprovementKind identifies a tile improvement. A tile holds at most one.
type ImprovementKind uint8

const (
	NoImprovement ImprovementKind = iota
	Farm
	Mine
	Pasture
	Plantation
	Quarry
	Fort
	Road

	improvementCount
)

type improvementAttrs struct {
	name    string
	yield   Yield
	defense int
	// costOverride replaces the terrain's movement cost when hasOverride is
	// set. Roads flatten hills and forest to open-ground speed.
	costOverride float64
	hasOverride  bool
}

var improvements = [improvementCount]improvementAttrs{
	NoImprovement: {name: "None"},
	Farm:          {name: "Farm", yield: Yield{Food: 1}},
	Mine:          {name: "Mine", yield: Yield{Production: 1}},
	Pasture:       {name: "Pasture", yield: Yield{Food: 1, Production: 1}},
	Plantation:    {name: "Plantation", yield: Yield{Gold: 1, Culture: 1}},
	Quarry:        {name: "Quarry", yield: Yield{Production: 2}},
	Fort:          {name: "Fort", defense: 50},
	Road:          {name: "Road", costOverride: 1, hasOverride: true},
}

func improvementEntry(k ImprovementKind) improvementAttrs {
	if k >= improvementCount {
		slog.Warn("unknown improvement kind, treating as unimproved", "kind", uint8(k))
		return improvements[NoImprovement]
	}
	return improvements[k]
}

// ImprovementName returns the display name of an improvement kind.
func ImprovementName(k ImprovementKind) string { return improvementEntry(k).name }

// ImprovementYieldModifier returns the yield delta an improvement adds.
func ImprovementYieldModifier(k ImprovementKind) Yield { return improvementEntry(k).yield }

// ImprovementDefenseBonus returns the defense modifier of an improvement.
func ImprovementDefenseBonus(k ImprovementKind) int { return improvementEntry(k).defense }

// ImprovementCostOverride returns the movement cost an improvement imposes
// in place of the terrain's base cost, and whether such an override exists.
func ImprovementCostOverride(k ImprovementKind) (float64, bool) {
	e := improvementEntry(k)
	return e.costOverride, e.hasOverride
}
