package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundPreservesCubeInvariant(t *testing.T) {
	// Round feeds its result through FromCube, which panics if the
	// corrected components do not sum to zero. Sweep a lattice of
	// fractional cube points, including the half-way ties that break
	// naive per-component rounding.
	for qi := -20; qi <= 20; qi++ {
		for ri := -20; ri <= 20; ri++ {
			qf := float64(qi) * 0.35
			rf := float64(ri) * 0.45
			sf := -qf - rf
			require.NotPanics(t, func() { Round(qf, rf, sf) },
				"round(%f, %f, %f)", qf, rf, sf)
		}
	}
}

func TestRoundCorrectsLargestError(t *testing.T) {
	// (0.5, 0.5, -1.0) rounds componentwise to (1, 1, -1), which sums to
	// 1; r carries the larger error and is recomputed.
	assert.Equal(t, HexCoord{Q: 1, R: 0}, Round(0.5, 0.5, -1.0))
	// Here q holds the largest error and must be the corrected one.
	assert.Equal(t, HexCoord{Q: 1, R: 1}, Round(0.6, 1.2, -1.8))
	assert.Equal(t, HexCoord{Q: 0, R: 0}, Round(0.0, 0.4, -0.4))
}

func TestRoundExactCoordinatesAreFixedPoints(t *testing.T) {
	for q := -5; q <= 5; q++ {
		for r := -5; r <= 5; r++ {
			c := HexCoord{Q: q, R: r}
			got := Round(float64(q), float64(r), float64(c.S()))
			assert.Equal(t, c, got)
		}
	}
}

func TestFromCubePanicsOnInvariantViolation(t *testing.T) {
	require.Panics(t, func() { FromCube(1, 1, 1) })
	require.NotPanics(t, func() { FromCube(2, -1, -1) })
}

func TestDistanceProperties(t *testing.T) {
	coords := []HexCoord{
		{0, 0}, {1, 0}, {0, 1}, {-1, 1}, {3, -2}, {-4, 0}, {2, 5}, {-3, -3},
	}

	for _, a := range coords {
		assert.Equal(t, 0, Distance(a, a), "identity at %v", a)
		for _, b := range coords {
			assert.Equal(t, Distance(a, b), Distance(b, a), "symmetry %v %v", a, b)
			for _, c := range coords {
				assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c),
					"triangle %v %v %v", a, b, c)
			}
		}
	}
}

func TestDistanceMatchesSingleSteps(t *testing.T) {
	origin := HexCoord{}
	for _, nb := range origin.Neighbors() {
		assert.Equal(t, 1, Distance(origin, nb))
	}
	// Two steps in the same direction is distance 2.
	for _, d := range HexDirections {
		assert.Equal(t, 2, Distance(origin, d.Scale(2)))
	}
}

func TestNeighborDirectionOrder(t *testing.T) {
	// E, NE, NW, W, SW, SE — the documented fixed order.
	want := [6]HexCoord{
		{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
	}
	assert.Equal(t, want, HexCoord{}.Neighbors())
}

func TestLayoutAdjacency(t *testing.T) {
	hex := NewHexLayout(5)
	assert.True(t, hex.IsAdjacent(HexCoord{0, 0}, HexCoord{1, -1}))
	assert.False(t, hex.IsAdjacent(HexCoord{0, 0}, HexCoord{2, -1}))
	assert.False(t, hex.IsAdjacent(HexCoord{0, 0}, HexCoord{0, 0}))

	rect := NewRectLayout(5, 5)
	assert.True(t, rect.IsAdjacent(HexCoord{1, 1}, HexCoord{1, 2}))
	// Diagonal is not adjacent on a 4-neighbor grid.
	assert.False(t, rect.IsAdjacent(HexCoord{1, 1}, HexCoord{2, 2}))
}

func TestPixelRoundTripHex(t *testing.T) {
	layout := NewHexLayout(10)
	for _, c := range layout.Coords() {
		x, z := layout.ToPixel(c)
		require.Equal(t, c, layout.FromPixel(x, z), "round trip %v", c)
	}
}

func TestPixelRoundTripRect(t *testing.T) {
	layout := NewRectLayout(8, 6)
	for _, c := range layout.Coords() {
		x, z := layout.ToPixel(c)
		require.Equal(t, c, layout.FromPixel(x, z), "round trip %v", c)
	}
}

func TestLayoutDistanceByShape(t *testing.T) {
	hex := NewHexLayout(5)
	rect := NewRectLayout(10, 10)
	a, b := HexCoord{0, 0}, HexCoord{3, 3}
	assert.Equal(t, 6, hex.Distance(a, b))
	assert.Equal(t, 6, rect.Distance(a, b))
	// Opposite-sign axial offsets cancel on a hex grid but not Manhattan.
	c := HexCoord{3, -3}
	assert.Equal(t, 3, hex.Distance(a, c))
	assert.Equal(t, 6, rect.Distance(a, c))
}

func TestLayoutContains(t *testing.T) {
	hex := NewHexLayout(2)
	assert.True(t, hex.Contains(HexCoord{2, -2}))
	assert.False(t, hex.Contains(HexCoord{2, 1}))

	rect := NewRectLayout(3, 2)
	assert.True(t, rect.Contains(HexCoord{2, 1}))
	assert.False(t, rect.Contains(HexCoord{3, 0}))
	assert.False(t, rect.Contains(HexCoord{-1, 0}))
}

func TestLayoutCoordCounts(t *testing.T) {
	assert.Len(t, NewHexLayout(3).Coords(), 37) // 1 + 3r(r+1)
	assert.Len(t, NewRectLayout(4, 5).Coords(), 20)
}
