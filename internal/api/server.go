// Package api provides the read-only HTTP view of the map state.
// All endpoints are GETs over current state; mutation stays with the game
// command layer, which is also responsible for serializing writes against
// these reads.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/hexforge/crownlands/internal/path"
	"github.com/hexforge/crownlands/internal/terrain"
	"github.com/hexforge/crownlands/internal/turn"
	"github.com/hexforge/crownlands/internal/world"
)

// Server serves map state over HTTP.
type Server struct {
	Grid   *world.Grid
	Finder *path.Pathfinder
	Movers *turn.Registry
	Port   int
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/api/v1/map", s.handleMap)
	mux.HandleFunc("/api/v1/tile", s.handleTile)
	mux.HandleFunc("/api/v1/path", s.handlePath)
	mux.HandleFunc("/api/v1/movers", s.handleMovers)
	return mux
}

// Start begins serving the HTTP view in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	go func() {
		slog.Info("api server listening", "addr", addr)
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			slog.Error("api server stopped", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"tiles":  s.Grid.Len(),
		"movers": len(s.Movers.All()),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.Grid.Statistics()
	terrainCounts := make(map[string]int, len(stats.Terrain))
	for k, n := range stats.Terrain {
		terrainCounts[terrain.Name(k)] = n
	}
	resourceCounts := make(map[string]int, len(stats.Resources))
	for k, n := range stats.Resources {
		resourceCounts[terrain.ResourceName(k)] = n
	}
	writeJSON(w, map[string]any{
		"total":     stats.Total,
		"passable":  stats.Passable,
		"terrain":   terrainCounts,
		"resources": resourceCounts,
	})
}

type tileView struct {
	Coord       world.HexCoord  `json:"coord"`
	Terrain     string          `json:"terrain"`
	Yield       terrain.Yield   `json:"yield"`
	Defense     int             `json:"defense"`
	Passable    bool            `json:"passable"`
	MoveCost    *float64        `json:"move_cost,omitempty"` // absent = impassable
	Improvement string          `json:"improvement,omitempty"`
	Resource    *world.Resource `json:"resource,omitempty"`
	UnitID      string          `json:"unit_id,omitempty"`
	CityID      string          `json:"city_id,omitempty"`
	Owner       string          `json:"owner,omitempty"`
}

func viewOf(t *world.Tile) tileView {
	v := tileView{
		Coord:    t.Coord,
		Terrain:  terrain.Name(t.Terrain),
		Yield:    t.Yield(),
		Defense:  t.DefenseBonus(),
		Passable: t.Passable(),
		Resource: t.Resource,
		UnitID:   t.UnitID,
		CityID:   t.CityID,
		Owner:    t.Owner,
	}
	if cost := t.MoveCost(); !math.IsInf(cost, 1) {
		v.MoveCost = &cost
	}
	if t.Improvement != terrain.NoImprovement {
		v.Improvement = terrain.ImprovementName(t.Improvement)
	}
	return v
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	tiles := make([]tileView, 0, s.Grid.Len())
	for _, c := range s.Grid.Coords() {
		tiles = append(tiles, viewOf(s.Grid.Get(c)))
	}
	writeJSON(w, map[string]any{
		"layout": s.Grid.Layout(),
		"tiles":  tiles,
	})
}

func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	c, err := coordParam(r, "q", "r")
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	t := s.Grid.Get(c)
	if t == nil {
		httpError(w, http.StatusNotFound, "no tile at coordinate")
		return
	}
	writeJSON(w, viewOf(t))
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	from, err := coordParam(r, "fq", "fr")
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := coordParam(r, "tq", "tr")
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	class := path.Land
	switch r.URL.Query().Get("class") {
	case "", "land":
	case "naval":
		class = path.Naval
	case "air":
		class = path.Air
	default:
		httpError(w, http.StatusBadRequest, "class must be land, naval, or air")
		return
	}

	budget := path.Unlimited
	if raw := r.URL.Query().Get("budget"); raw != "" {
		b, err := strconv.ParseFloat(raw, 64)
		if err != nil || b < 0 {
			httpError(w, http.StatusBadRequest, "budget must be a non-negative number")
			return
		}
		budget = b
	}

	p := s.Finder.FindPath(from, to, class, budget)
	if p == nil {
		writeJSON(w, map[string]any{"found": false})
		return
	}
	steps := make([]world.HexCoord, len(p.Tiles))
	for i, t := range p.Tiles {
		steps[i] = t.Coord
	}
	writeJSON(w, map[string]any{
		"found": true,
		"cost":  p.Cost,
		"steps": steps,
	})
}

func (s *Server) handleMovers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Movers.All())
}

func coordParam(r *http.Request, qKey, rKey string) (world.HexCoord, error) {
	q, err := strconv.Atoi(r.URL.Query().Get(qKey))
	if err != nil {
		return world.HexCoord{}, fmt.Errorf("%s must be an integer", qKey)
	}
	rr, err := strconv.Atoi(r.URL.Query().Get(rKey))
	if err != nil {
		return world.HexCoord{}, fmt.Errorf("%s must be an integer", rKey)
	}
	return world.HexCoord{Q: q, R: rr}, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
