// Package turn provides per-unit movement and action point accounting.
// Budgets are debited as the command layer applies moves and actions, and
// restored only at the owning player's turn start.
package turn

import (
	"github.com/google/uuid"

	"github.com/hexforge/crownlands/internal/path"
	"github.com/hexforge/crownlands/internal/world"
)

// State describes a mover's budget state within the current turn.
type State uint8

const (
	Fresh          State = iota // full budgets
	PartiallySpent              // something debited, something left
	Exhausted                   // movement or actions at zero
)

// Mover holds a unit's traversal class and its turn-scoped budgets. The
// unit entity itself lives in the Registry; the map only holds its id.
type Mover struct {
	ID    uuid.UUID      `json:"id"`
	Owner string         `json:"owner"`
	Class path.MoveClass `json:"class"`
	Pos   world.HexCoord `json:"pos"`

	MaxMovement float64 `json:"max_movement"`
	Movement    float64 `json:"movement"`
	MaxActions  int     `json:"max_actions"`
	Actions     int     `json:"actions"`
}

// NewMover creates a mover with full budgets.
func NewMover(owner string, class path.MoveClass, maxMovement float64, maxActions int) *Mover {
	return &Mover{
		ID:          uuid.New(),
		Owner:       owner,
		Class:       class,
		MaxMovement: maxMovement,
		Movement:    maxMovement,
		MaxActions:  maxActions,
		Actions:     maxActions,
	}
}

// State returns the mover's position in the per-turn budget state machine.
func (m *Mover) State() State {
	switch {
	case m.Movement <= 0 || m.Actions <= 0:
		return Exhausted
	case m.Movement < m.MaxMovement || m.Actions < m.MaxActions:
		return PartiallySpent
	default:
		return Fresh
	}
}

// CanAfford reports whether the mover has movement points for the whole
// path. A nil path (no route) is never affordable.
func (m *Mover) CanAfford(p *path.Path) bool {
	return p != nil && p.Cost <= m.Movement
}

// DebitMovement spends movement points, clamping the remainder at zero.
func (m *Mover) DebitMovement(amount float64) {
	m.Movement -= amount
	if m.Movement < 0 {
		m.Movement = 0
	}
}

// DebitAction spends one action point. Returns false — and leaves the
// balance untouched — when no points remain. This is the gate for attacks
// and special actions.
func (m *Mover) DebitAction() bool {
	if m.Actions <= 0 {
		return false
	}
	m.Actions--
	return true
}

// ResetForNewTurn restores both budgets to their maxima. Called exactly once
// per mover at the owning player's turn start; nothing else ever increases
// the budgets.
func (m *Mover) ResetForNewTurn() {
	m.Movement = m.MaxMovement
	m.Actions = m.MaxActions
}
