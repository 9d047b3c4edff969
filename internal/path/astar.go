package path

import (
	"container/heap"
	"math"

	"github.com/hexforge/crownlands/internal/world"
)

// Unlimited disables budget pruning in FindPath.
var Unlimited = math.Inf(1)

// Path is an ordered walk from (exclusive) start to (inclusive) destination
// with its total movement-point cost. Produced fresh per query.
type Path struct {
	Tiles []*world.Tile
	Cost  float64
}

// Len returns the number of steps in the path.
func (p *Path) Len() int { return len(p.Tiles) }

// Contains reports whether the path passes through the given coordinate.
func (p *Path) Contains(c world.HexCoord) bool {
	for _, t := range p.Tiles {
		if t.Coord == c {
			return true
		}
	}
	return false
}

// Pathfinder runs A* queries against a grid.
type Pathfinder struct {
	grid *world.Grid
}

// NewPathfinder creates a pathfinder bound to the given grid.
func NewPathfinder(g *world.Grid) *Pathfinder {
	return &Pathfinder{grid: g}
}

// FindPath returns the least-cost path from start to goal for the given
// traversal class, or nil when no path exists. A budget caps the total
// movement-point spend: any route costing more is treated as unreachable.
// Pass Unlimited for an unconstrained search.
//
// start == goal succeeds immediately with an empty zero-cost path. A goal
// that is absent from the grid or can never be entered by the class fails
// immediately without searching.
//
// Nodes with equal f are expanded in insertion order (FIFO), so repeated
// queries over an unchanged grid return identical paths.
func (p *Pathfinder) FindPath(start, goal world.HexCoord, class MoveClass, budget float64) *Path {
	if start == goal {
		return &Path{Tiles: []*world.Tile{}, Cost: 0}
	}
	if p.grid.Get(start) == nil || !enterable(p.grid.Get(goal), class) {
		return nil
	}

	layout := p.grid.Layout()
	h := func(c world.HexCoord) float64 {
		return float64(layout.Distance(c, goal))
	}

	open := &nodeQueue{}
	heap.Init(open)
	seq := 0
	push := func(c world.HexCoord, f float64) {
		heap.Push(open, &node{coord: c, f: f, seq: seq})
		seq++
	}

	g := map[world.HexCoord]float64{start: 0}
	came := map[world.HexCoord]world.HexCoord{}
	closed := map[world.HexCoord]bool{}
	push(start, h(start))

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node).coord
		if closed[cur] {
			continue // stale queue entry superseded by a cheaper relaxation
		}
		closed[cur] = true
		if cur == goal {
			return p.reconstruct(start, goal, g[goal], came)
		}

		curTile := p.grid.Get(cur)
		for _, nb := range p.grid.NeighborsOf(curTile) {
			nc := nb.Coord
			if closed[nc] {
				continue
			}
			step := EdgeCost(curTile, nb, class)
			if math.IsInf(step, 1) {
				continue
			}
			tentative := g[cur] + step
			if tentative > budget {
				continue
			}
			if old, ok := g[nc]; !ok || tentative < old {
				g[nc] = tentative
				came[nc] = cur
				push(nc, tentative+h(nc))
			}
		}
	}
	return nil
}

// CanReach reports whether the destination is reachable for the class within
// the given movement-point budget.
func (p *Pathfinder) CanReach(start, goal world.HexCoord, class MoveClass, movement float64) bool {
	return p.FindPath(start, goal, class, movement) != nil
}

func (p *Pathfinder) reconstruct(start, goal world.HexCoord, cost float64, came map[world.HexCoord]world.HexCoord) *Path {
	var coords []world.HexCoord
	for c := goal; c != start; c = came[c] {
		coords = append(coords, c)
	}
	tiles := make([]*world.Tile, len(coords))
	for i, c := range coords {
		tiles[len(coords)-1-i] = p.grid.Get(c)
	}
	return &Path{Tiles: tiles, Cost: cost}
}

// node is an open-set entry. seq breaks f ties in favor of the earlier
// insertion, keeping expansion order reproducible.
type node struct {
	coord world.HexCoord
	f     float64
	seq   int
}

type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
