package world

import "math"

// GridShape selects the map topology.
type GridShape uint8

const (
	// ShapeHex is a hex-disc map: all coordinates with cube distance from
	// the origin at most Radius. Six neighbors, hex distance.
	ShapeHex GridShape = iota
	// ShapeRect is a rectangular map: columns 0..Width-1, rows 0..Height-1
	// stored directly as (q, r). Four neighbors, Manhattan distance.
	ShapeRect
)

// tileSize is the world-space radius of a tile. Pixel conversions are a
// fixed affine transform; the render layer applies its own scaling.
const tileSize = 1.0

// Layout is the map profile: one canonical coordinate model with the shape,
// neighbor count, and distance metric decided in a single place instead of
// two parallel map implementations.
type Layout struct {
	Shape  GridShape `json:"shape"`
	Radius int       `json:"radius,omitempty"` // hex shape only
	Width  int       `json:"width,omitempty"`  // rect shape only
	Height int       `json:"height,omitempty"` // rect shape only
}

// NewHexLayout returns a hex-disc layout with the given radius.
func NewHexLayout(radius int) Layout {
	return Layout{Shape: ShapeHex, Radius: radius}
}

// NewRectLayout returns a rectangular layout of width x height.
func NewRectLayout(width, height int) Layout {
	return Layout{Shape: ShapeRect, Width: width, Height: height}
}

// Contains reports whether the coordinate lies within the map bounds.
func (l Layout) Contains(c HexCoord) bool {
	if l.Shape == ShapeRect {
		return c.Q >= 0 && c.Q < l.Width && c.R >= 0 && c.R < l.Height
	}
	return Distance(HexCoord{}, c) <= l.Radius
}

// Directions returns the neighbor offsets for this layout, in the fixed
// documented order.
func (l Layout) Directions() []HexCoord {
	if l.Shape == ShapeRect {
		return RectDirections[:]
	}
	return HexDirections[:]
}

// Neighbors returns the adjacent coordinates of c in direction order,
// including ones that fall outside the map bounds.
func (l Layout) Neighbors(c HexCoord) []HexCoord {
	dirs := l.Directions()
	out := make([]HexCoord, len(dirs))
	for i, d := range dirs {
		out[i] = c.Add(d)
	}
	return out
}

// Distance returns the minimum number of single-step moves between a and b
// on an unobstructed grid of this layout.
func (l Layout) Distance(a, b HexCoord) int {
	if l.Shape == ShapeRect {
		return ManhattanDistance(a, b)
	}
	return Distance(a, b)
}

// IsAdjacent reports whether a and b are exactly one step apart.
func (l Layout) IsAdjacent(a, b HexCoord) bool {
	return l.Distance(a, b) == 1
}

// ToPixel converts a coordinate to world space. Hex maps use the pointy-top
// transform; rectangular maps are a unit square grid.
func (l Layout) ToPixel(c HexCoord) (x, z float64) {
	if l.Shape == ShapeRect {
		return tileSize * float64(c.Q), tileSize * float64(c.R)
	}
	x = tileSize * math.Sqrt(3) * (float64(c.Q) + float64(c.R)/2.0)
	z = tileSize * 1.5 * float64(c.R)
	return
}

// FromPixel converts a world-space point back to the nearest coordinate,
// inverting ToPixel and rounding deterministically.
func (l Layout) FromPixel(x, z float64) HexCoord {
	if l.Shape == ShapeRect {
		return HexCoord{
			Q: int(math.Round(x / tileSize)),
			R: int(math.Round(z / tileSize)),
		}
	}
	rf := 2.0 / 3.0 * z / tileSize
	qf := x/(tileSize*math.Sqrt(3)) - rf/2.0
	return Round(qf, rf, -qf-rf)
}

// Coords enumerates every coordinate in the map bounds in a fixed order:
// row-major for rectangles, the q-then-clipped-r diamond for hex discs.
func (l Layout) Coords() []HexCoord {
	if l.Shape == ShapeRect {
		out := make([]HexCoord, 0, l.Width*l.Height)
		for r := 0; r < l.Height; r++ {
			for q := 0; q < l.Width; q++ {
				out = append(out, HexCoord{Q: q, R: r})
			}
		}
		return out
	}
	rad := l.Radius
	out := make([]HexCoord, 0, 1+3*rad*(rad+1))
	for q := -rad; q <= rad; q++ {
		r1 := maxInt(-rad, -q-rad)
		r2 := minInt(rad, -q+rad)
		for r := r1; r <= r2; r++ {
			out = append(out, HexCoord{Q: q, R: r})
		}
	}
	return out
}

// InRange enumerates the coordinates within the given step distance of
// center, bounds ignored, in the same deterministic order as Coords.
func (l Layout) InRange(center HexCoord, radius int) []HexCoord {
	if l.Shape == ShapeRect {
		out := make([]HexCoord, 0, 2*radius*(radius+1)+1)
		for dq := -radius; dq <= radius; dq++ {
			rem := radius - absInt(dq)
			for dr := -rem; dr <= rem; dr++ {
				out = append(out, center.Add(HexCoord{Q: dq, R: dr}))
			}
		}
		return out
	}
	out := make([]HexCoord, 0, 1+3*radius*(radius+1))
	for dq := -radius; dq <= radius; dq++ {
		r1 := maxInt(-radius, -dq-radius)
		r2 := minInt(radius, -dq+radius)
		for dr := r1; dr <= r2; dr++ {
			out = append(out, center.Add(HexCoord{Q: dq, R: dr}))
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
