package turn

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/hexforge/crownlands/internal/path"
	"github.com/hexforge/crownlands/internal/world"
)

// Registry owns the mover entities. Tiles carry only the mover's id as a
// weak occupancy reference; lookups go through here.
type Registry struct {
	movers map[uuid.UUID]*Mover
	order  []uuid.UUID
}

// NewRegistry creates an empty mover registry.
func NewRegistry() *Registry {
	return &Registry{movers: make(map[uuid.UUID]*Mover)}
}

// Add registers a mover.
func (r *Registry) Add(m *Mover) {
	if _, exists := r.movers[m.ID]; !exists {
		r.order = append(r.order, m.ID)
	}
	r.movers[m.ID] = m
}

// Get returns the mover with the given id, or nil.
func (r *Registry) Get(id uuid.UUID) *Mover {
	return r.movers[id]
}

// All returns every mover in registration order.
func (r *Registry) All() []*Mover {
	out := make([]*Mover, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.movers[id])
	}
	return out
}

// ByOwner returns the given player's movers in registration order.
func (r *Registry) ByOwner(owner string) []*Mover {
	var out []*Mover
	for _, id := range r.order {
		if m := r.movers[id]; m.Owner == owner {
			out = append(out, m)
		}
	}
	return out
}

// Place puts a mover on a tile, recording the weak occupancy reference.
// Fails when the coordinate is absent or the tile is already occupied.
func (r *Registry) Place(g *world.Grid, m *Mover, c world.HexCoord) bool {
	t := g.Get(c)
	if t == nil || t.UnitID != "" {
		return false
	}
	r.Add(m)
	m.Pos = c
	t.UnitID = m.ID.String()
	return true
}

// Move routes a mover to dest, debiting its movement budget. The path is
// found within the remaining budget, so an unaffordable destination fails
// without mutating anything. Returns the applied path on success.
func (r *Registry) Move(g *world.Grid, pf *path.Pathfinder, m *Mover, dest world.HexCoord) (*path.Path, bool) {
	p := pf.FindPath(m.Pos, dest, m.Class, m.Movement)
	if !m.CanAfford(p) {
		return nil, false
	}
	if len(p.Tiles) > 0 {
		last := p.Tiles[len(p.Tiles)-1]
		if last.UnitID != "" {
			return nil, false // destination occupied
		}
		if from := g.Get(m.Pos); from != nil && from.UnitID == m.ID.String() {
			from.UnitID = ""
		}
		last.UnitID = m.ID.String()
		m.Pos = last.Coord
	}
	m.DebitMovement(p.Cost)
	return p, true
}

// StartTurn resets budgets for every mover belonging to the player. This is
// the only call site for ResetForNewTurn outside tests.
func (r *Registry) StartTurn(owner string) {
	n := 0
	for _, m := range r.ByOwner(owner) {
		m.ResetForNewTurn()
		n++
	}
	slog.Debug("turn started", "owner", owner, "movers", n)
}
