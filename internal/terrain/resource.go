package terrain

import "log/slog"

// ResourceKind identifies a harvestable resource that can occupy a tile.
type ResourceKind uint8

const (
	Wheat ResourceKind = iota
	Cattle
	Fish
	Horses
	Iron
	Coal
	GoldOre
	Gems
	Silk
	Spices
	Marble
	Furs

	resourceCount
)

// ResourceCategory groups resource kinds by their strategic role.
type ResourceCategory uint8

const (
	Bonus     ResourceCategory = iota // food/production boosters
	Strategic                        // required by unit production
	Luxury                           // happiness and trade value
)

type resourceAttrs struct {
	name     string
	category ResourceCategory
	yield    Yield
}

var resources = [resourceCount]resourceAttrs{
	Wheat:   {"Wheat", Bonus, Yield{Food: 1}},
	Cattle:  {"Cattle", Bonus, Yield{Food: 1}},
	Fish:    {"Fish", Bonus, Yield{Food: 2}},
	Horses:  {"Horses", Strategic, Yield{Production: 1}},
	Iron:    {"Iron", Strategic, Yield{Production: 1}},
	Coal:    {"Coal", Strategic, Yield{Production: 2}},
	GoldOre: {"Gold Ore", Luxury, Yield{Gold: 2}},
	Gems:    {"Gems", Luxury, Yield{Gold: 3}},
	Silk:    {"Silk", Luxury, Yield{Gold: 2, Culture: 1}},
	Spices:  {"Spices", Luxury, Yield{Food: 1, Gold: 1}},
	Marble:  {"Marble", Luxury, Yield{Production: 1, Culture: 1}},
	Furs:    {"Furs", Luxury, Yield{Gold: 2}},
}

// resourceTerrains restricts resource kinds to an allow-list of terrains.
// Kinds absent from this table may appear on any terrain.
var resourceTerrains = map[ResourceKind][]Kind{
	Wheat:   {Grass, Plains, River},
	Cattle:  {Grass, Plains},
	Fish:    {Coast, Ocean, River},
	Horses:  {Grass, Plains, Tundra},
	Iron:    {Hills, Mountain, Desert, Tundra},
	Coal:    {Hills, Plains},
	GoldOre: {Hills, Desert},
	Gems:    {Hills, Jungle},
	Silk:    {Forest, Jungle},
	Spices:  {Jungle},
	Marble:  {Hills, Plains, Grass},
	Furs:    {Forest, Tundra, Snow},
}

func resourceEntry(k ResourceKind) resourceAttrs {
	if k >= resourceCount {
		slog.Warn("unknown resource kind, using wheat defaults", "kind", uint8(k))
		return resources[Wheat]
	}
	return resources[k]
}

// ResourceName returns the display name of a resource kind.
func ResourceName(k ResourceKind) string { return resourceEntry(k).name }

// Category returns the strategic grouping of a resource kind.
func Category(k ResourceKind) ResourceCategory { return resourceEntry(k).category }

// ResourceYieldModifier returns the yield delta a resource adds to its tile.
func ResourceYieldModifier(k ResourceKind) Yield { return resourceEntry(k).yield }

// ResourceCompatible reports whether a resource kind may occur on the given
// terrain. Kinds without an allow-list entry are compatible everywhere.
func ResourceCompatible(t Kind, r ResourceKind) bool {
	allowed, restricted := resourceTerrains[r]
	if !restricted {
		return true
	}
	for _, k := range allowed {
		if k == t {
			return true
		}
	}
	return false
}
