// Map generation using layered simplex noise.
// Elevation, rainfall, and temperature fields are sampled per tile, terrain
// is derived from them, then lakes, coast, rivers, and resources are layered
// in separate passes. Every pass is deterministic for a given seed.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/hexforge/crownlands/internal/terrain"
)

// GenConfig holds map generation parameters.
type GenConfig struct {
	Layout         Layout
	Seed           int64   // 0 = random
	SeaLevel       float64 // elevation threshold for ocean
	MountainLevel  float64 // elevation threshold for mountains
	HillLevel      float64 // elevation threshold for hills
	ResourceChance float64 // per-tile probability of a resource deposit
}

// DefaultGenConfig returns a reasonable full-size configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Layout:         NewHexLayout(22),
		Seed:           0,
		SeaLevel:       0.25,
		MountainLevel:  0.72,
		HillLevel:      0.60,
		ResourceChance: 0.10,
	}
}

// SmallTestConfig returns a tiny map for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Layout:         NewHexLayout(5),
		Seed:           42,
		SeaLevel:       0.30,
		MountainLevel:  0.75,
		HillLevel:      0.62,
		ResourceChance: 0.12,
	}
}

// Generate creates a complete map with terrain, water features, rivers, and
// resources. Identical configs produce identical maps.
func Generate(cfg GenConfig) *Grid {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Independent noise layers.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	g := NewGrid(cfg.Layout)
	coords := cfg.Layout.Coords()

	// Map extent in world space, for edge falloff and latitude effects.
	cx, cz, extent := worldExtent(cfg.Layout, coords)

	for _, coord := range coords {
		x, z := cfg.Layout.ToPixel(coord)

		elev := octaveNoise(elevNoise, x, z, 4, 0.08, 0.5)
		rain := octaveNoise(rainNoise, x, z, 3, 0.06, 0.5)
		temp := octaveNoise(tempNoise, x, z, 3, 0.05, 0.5)

		// Continental shaping: sink elevation toward the edges so the map
		// is ringed by ocean instead of cut-off land.
		dx, dz := x-cx, z-cz
		distFromCenter := math.Sqrt(dx*dx+dz*dz) / extent
		edgeFalloff := 1.0 - math.Pow(distFromCenter, 3.5)
		if edgeFalloff < 0 {
			edgeFalloff = 0
		}
		elev *= edgeFalloff

		// Temperature drops with latitude and elevation.
		temp = temp*0.6 + (1.0-math.Abs(dz)/extent)*0.3 + (1.0-elev)*0.1

		g.Set(&Tile{
			Coord:       coord,
			Terrain:     deriveTerrain(elev, rain, temp, cfg),
			Elevation:   elev,
			Rainfall:    rain,
			Temperature: temp,
		})
	}

	// Water and feature passes convert terrain in place — they never remove
	// tiles, so the map has no gaps.
	carveLakes(g)
	markCoast(g)
	placeRivers(g, seed)
	placeResources(g, seed, cfg.ResourceChance)

	return g
}

func worldExtent(layout Layout, coords []HexCoord) (cx, cz, extent float64) {
	if len(coords) == 0 {
		return 0, 0, 1
	}
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, c := range coords {
		x, z := layout.ToPixel(c)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minZ, maxZ = math.Min(minZ, z), math.Max(maxZ, z)
	}
	cx = (minX + maxX) / 2
	cz = (minZ + maxZ) / 2
	extent = math.Max(maxX-cx, maxZ-cz)
	if extent <= 0 {
		extent = 1
	}
	return
}

// deriveTerrain maps environmental parameters to a terrain kind.
func deriveTerrain(elev, rain, temp float64, cfg GenConfig) terrain.Kind {
	switch {
	case elev < cfg.SeaLevel:
		return terrain.Ocean
	case elev > cfg.MountainLevel:
		return terrain.Mountain
	case elev > cfg.HillLevel:
		return terrain.Hills
	case temp < 0.12:
		return terrain.Snow
	case temp < 0.28:
		return terrain.Tundra
	case rain < 0.22 && temp > 0.55:
		return terrain.Desert
	case rain > 0.68 && temp > 0.55:
		return terrain.Jungle
	case rain > 0.50:
		return terrain.Forest
	case rain < 0.35:
		return terrain.Plains
	default:
		return terrain.Grass
	}
}

// carveLakes turns rain-soaked local elevation minima into standing water.
func carveLakes(g *Grid) {
	var lakes []HexCoord
	for _, c := range g.Coords() {
		t := g.Get(c)
		if !t.Passable() || t.Rainfall < 0.80 {
			continue
		}
		lowest := true
		for _, nb := range g.NeighborsOf(t) {
			if nb.Elevation < t.Elevation {
				lowest = false
				break
			}
		}
		if lowest {
			lakes = append(lakes, c)
		}
	}
	for _, c := range lakes {
		g.Get(c).Terrain = terrain.Coast
	}
}

// markCoast converts ocean tiles that border land into coast.
func markCoast(g *Grid) {
	var coastal []HexCoord
	for _, c := range g.Coords() {
		t := g.Get(c)
		if t.Terrain != terrain.Ocean {
			continue
		}
		for _, nb := range g.NeighborsOf(t) {
			if !terrain.IsWater(nb.Terrain) {
				coastal = append(coastal, c)
				break
			}
		}
	}
	for _, c := range coastal {
		g.Get(c).Terrain = terrain.Coast
	}
}

// placeRivers traces a handful of rivers from high ground to the sea.
func placeRivers(g *Grid, seed int64) {
	rng := rand.New(rand.NewSource(seed + 100))

	var sources []HexCoord
	for _, c := range g.Coords() {
		t := g.Get(c)
		if t.Elevation > 0.65 && !terrain.IsWater(t.Terrain) {
			sources = append(sources, c)
		}
	}
	if len(sources) == 0 {
		return
	}

	numRivers := len(sources) / 8
	if numRivers < 2 {
		numRivers = 2
	}
	if numRivers > 10 {
		numRivers = 10
	}

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > numRivers {
		sources = sources[:numRivers]
	}

	for _, start := range sources {
		traceRiver(g, start)
	}
}

// traceRiver follows the steepest descent from a source until it reaches
// water or runs out of downhill path.
func traceRiver(g *Grid, start HexCoord) {
	current := start
	visited := make(map[HexCoord]bool)
	const maxSteps = 50

	for step := 0; step < maxSteps; step++ {
		visited[current] = true
		t := g.Get(current)
		if t == nil || terrain.IsWater(t.Terrain) {
			break
		}

		// Mountains stay mountains; everything else the river runs through
		// becomes river terrain.
		if t.Terrain != terrain.Mountain {
			t.Terrain = terrain.River
		}

		var next *Tile
		bestElev := t.Elevation
		for _, nb := range g.NeighborsOf(t) {
			if visited[nb.Coord] {
				continue
			}
			if nb.Elevation < bestElev {
				bestElev = nb.Elevation
				next = nb
			}
		}
		if next == nil {
			break
		}
		current = next.Coord
	}
}

// placeResources scatters deposits over compatible terrain.
func placeResources(g *Grid, seed int64, chance float64) {
	rng := rand.New(rand.NewSource(seed + 200))

	for _, c := range g.Coords() {
		if rng.Float64() >= chance {
			continue
		}
		t := g.Get(c)
		candidates := compatibleResources(t.Terrain)
		if len(candidates) == 0 {
			continue
		}
		kind := candidates[rng.Intn(len(candidates))]
		t.Resource = newDeposit(kind)
	}
}

func compatibleResources(t terrain.Kind) []terrain.ResourceKind {
	var out []terrain.ResourceKind
	for k := terrain.Wheat; k <= terrain.Furs; k++ {
		if terrain.ResourceCompatible(t, k) {
			out = append(out, k)
		}
	}
	return out
}

func newDeposit(kind terrain.ResourceKind) *Resource {
	var max, regrow float64
	switch terrain.Category(kind) {
	case terrain.Strategic:
		max, regrow = 100, 0
	case terrain.Luxury:
		max, regrow = 60, 0.5
	default:
		max, regrow = 80, 1
	}
	return &Resource{Kind: kind, Value: max, MaxValue: max, Regrowth: regrow}
}

// octaveNoise layers multiple noise frequencies for natural-looking fields.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
