// Package snapshot provides SQLite-based persistence of the full data
// model: tiles with their resources, improvements and occupancy, movers with
// their budgets, and map metadata. Writes are full-replace transactions; a
// loaded snapshot reproduces the saved state field for field.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/hexforge/crownlands/internal/path"
	"github.com/hexforge/crownlands/internal/terrain"
	"github.com/hexforge/crownlands/internal/turn"
	"github.com/hexforge/crownlands/internal/world"
)

// DB wraps a SQLite connection for map state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(dbPath string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tiles (
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		terrain INTEGER NOT NULL,
		improvement INTEGER NOT NULL,
		unit_id TEXT NOT NULL,
		city_id TEXT NOT NULL,
		owner TEXT NOT NULL,
		elevation REAL NOT NULL,
		rainfall REAL NOT NULL,
		temperature REAL NOT NULL,
		resource_kind INTEGER,
		resource_value REAL,
		resource_max REAL,
		resource_regrowth REAL,
		resource_access TEXT,
		PRIMARY KEY (q, r)
	);

	CREATE TABLE IF NOT EXISTS movers (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		class INTEGER NOT NULL,
		pos_q INTEGER NOT NULL,
		pos_r INTEGER NOT NULL,
		max_movement REAL NOT NULL,
		movement REAL NOT NULL,
		max_actions INTEGER NOT NULL,
		actions INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS map_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes the grid and registry to the database, replacing any previous
// snapshot.
func (db *DB) Save(g *world.Grid, reg *turn.Registry) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	layoutJSON, err := json.Marshal(g.Layout())
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO map_meta (key, value) VALUES ('layout', ?)",
		string(layoutJSON),
	); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM tiles"); err != nil {
		return err
	}
	for _, c := range g.Coords() {
		t := g.Get(c)
		var resKind, resValue, resMax, resRegrowth, resAccess any
		if t.Resource != nil {
			access, err := json.Marshal(t.Resource.Access)
			if err != nil {
				return fmt.Errorf("marshal resource access: %w", err)
			}
			resKind = int(t.Resource.Kind)
			resValue = t.Resource.Value
			resMax = t.Resource.MaxValue
			resRegrowth = t.Resource.Regrowth
			resAccess = string(access)
		}
		if _, err := tx.Exec(`
			INSERT INTO tiles (q, r, terrain, improvement, unit_id, city_id, owner,
				elevation, rainfall, temperature,
				resource_kind, resource_value, resource_max, resource_regrowth, resource_access)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Coord.Q, t.Coord.R, int(t.Terrain), int(t.Improvement),
			t.UnitID, t.CityID, t.Owner,
			t.Elevation, t.Rainfall, t.Temperature,
			resKind, resValue, resMax, resRegrowth, resAccess,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM movers"); err != nil {
		return err
	}
	for _, m := range reg.All() {
		if _, err := tx.Exec(`
			INSERT INTO movers (id, owner, class, pos_q, pos_r,
				max_movement, movement, max_actions, actions)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID.String(), m.Owner, int(m.Class), m.Pos.Q, m.Pos.R,
			m.MaxMovement, m.Movement, m.MaxActions, m.Actions,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// HasSnapshot reports whether a saved map exists.
func (db *DB) HasSnapshot() bool {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM map_meta WHERE key = 'layout'"); err != nil {
		return false
	}
	return count > 0
}

// Load reads the saved grid and registry back. Tile load order follows the
// layout enumeration so the reloaded grid iterates identically to the
// original.
func (db *DB) Load() (*world.Grid, *turn.Registry, error) {
	var layoutJSON string
	if err := db.conn.Get(&layoutJSON, "SELECT value FROM map_meta WHERE key = 'layout'"); err != nil {
		return nil, nil, fmt.Errorf("load layout: %w", err)
	}
	var layout world.Layout
	if err := json.Unmarshal([]byte(layoutJSON), &layout); err != nil {
		return nil, nil, fmt.Errorf("unmarshal layout: %w", err)
	}

	g := world.NewGrid(layout)
	rows, err := db.conn.Query(`
		SELECT q, r, terrain, improvement, unit_id, city_id, owner,
			elevation, rainfall, temperature,
			resource_kind, resource_value, resource_max, resource_regrowth, resource_access
		FROM tiles`)
	if err != nil {
		return nil, nil, fmt.Errorf("load tiles: %w", err)
	}
	defer rows.Close()

	byCoord := make(map[world.HexCoord]*world.Tile)
	for rows.Next() {
		var (
			t           world.Tile
			terrainKind int
			improvement int
			resKind     sql.NullInt64
			resValue    sql.NullFloat64
			resMax      sql.NullFloat64
			resRegrowth sql.NullFloat64
			resAccess   sql.NullString
		)
		if err := rows.Scan(&t.Coord.Q, &t.Coord.R, &terrainKind, &improvement,
			&t.UnitID, &t.CityID, &t.Owner,
			&t.Elevation, &t.Rainfall, &t.Temperature,
			&resKind, &resValue, &resMax, &resRegrowth, &resAccess,
		); err != nil {
			return nil, nil, fmt.Errorf("scan tile: %w", err)
		}
		t.Terrain = terrain.Kind(terrainKind)
		t.Improvement = terrain.ImprovementKind(improvement)
		if resKind.Valid {
			res := &world.Resource{
				Kind:     terrain.ResourceKind(resKind.Int64),
				Value:    resValue.Float64,
				MaxValue: resMax.Float64,
				Regrowth: resRegrowth.Float64,
			}
			if resAccess.Valid && resAccess.String != "" {
				if err := json.Unmarshal([]byte(resAccess.String), &res.Access); err != nil {
					return nil, nil, fmt.Errorf("unmarshal resource access: %w", err)
				}
			}
			t.Resource = res
		}
		tile := t
		byCoord[tile.Coord] = &tile
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate tiles: %w", err)
	}
	for _, c := range layout.Coords() {
		if tile := byCoord[c]; tile != nil {
			g.Set(tile)
		}
	}

	reg := turn.NewRegistry()
	mrows, err := db.conn.Query(`
		SELECT id, owner, class, pos_q, pos_r, max_movement, movement, max_actions, actions
		FROM movers ORDER BY rowid`)
	if err != nil {
		return nil, nil, fmt.Errorf("load movers: %w", err)
	}
	defer mrows.Close()

	for mrows.Next() {
		var (
			m     turn.Mover
			id    string
			class int
		)
		if err := mrows.Scan(&id, &m.Owner, &class, &m.Pos.Q, &m.Pos.R,
			&m.MaxMovement, &m.Movement, &m.MaxActions, &m.Actions,
		); err != nil {
			return nil, nil, fmt.Errorf("scan mover: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, nil, fmt.Errorf("parse mover id %q: %w", id, err)
		}
		m.ID = parsed
		m.Class = path.MoveClass(class)
		mover := m
		reg.Add(&mover)
	}
	if err := mrows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate movers: %w", err)
	}

	return g, reg, nil
}
