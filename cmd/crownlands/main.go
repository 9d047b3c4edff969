// Command crownlands generates a map, persists a snapshot, and serves the
// read-only HTTP view. It doubles as a demo harness for the map/movement
// core; the interactive game client consumes the core as a library.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/hexforge/crownlands/internal/api"
	"github.com/hexforge/crownlands/internal/config"
	"github.com/hexforge/crownlands/internal/path"
	"github.com/hexforge/crownlands/internal/snapshot"
	"github.com/hexforge/crownlands/internal/terrain"
	"github.com/hexforge/crownlands/internal/turn"
	"github.com/hexforge/crownlands/internal/world"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if cfgPath := os.Getenv("CROWNLANDS_CONFIG"); cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			slog.Error("failed to load config", "path", cfgPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
		slog.Info("config loaded", "path", cfgPath)
	}

	gen, err := cfg.GenConfig()
	if err != nil {
		slog.Error("invalid map config", "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.Snapshot.Path), 0755)
	db, err := snapshot.Open(cfg.Snapshot.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.Snapshot.Path)

	// ── Map (restored from snapshot or regenerated) ───────────────────
	var grid *world.Grid
	var movers *turn.Registry

	if db.HasSnapshot() {
		slog.Info("found saved map, loading...")
		grid, movers, err = db.Load()
		if err != nil {
			slog.Error("failed to load snapshot", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("generating map...", "shape", cfg.Map.Shape, "seed", gen.Seed)
		grid = world.Generate(gen)
		movers = turn.NewRegistry()
		seedDemoUnits(grid, movers)
		if err := db.Save(grid, movers); err != nil {
			slog.Error("failed to save snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot saved")
	}

	stats := grid.Statistics()
	slog.Info("map ready",
		"tiles", humanize.Comma(int64(stats.Total)),
		"passable", humanize.Comma(int64(stats.Passable)),
	)
	for kind, count := range stats.Terrain {
		slog.Info("terrain", "type", terrain.Name(kind), "count", count)
	}

	finder := path.NewPathfinder(grid)

	if cfg.API.Port > 0 {
		srv := &api.Server{Grid: grid, Finder: finder, Movers: movers, Port: cfg.API.Port}
		srv.Start()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down, saving snapshot...")
	if err := db.Save(grid, movers); err != nil {
		slog.Error("final save failed", "error", err)
		os.Exit(1)
	}
	slog.Info("snapshot saved, goodbye")
}

// seedDemoUnits drops one unit of each traversal class onto the map so the
// movers endpoint has something to show on a fresh world.
func seedDemoUnits(grid *world.Grid, movers *turn.Registry) {
	land := grid.FilterPassable()
	if len(land) > 0 {
		scout := turn.NewMover("demo", path.Land, 2, 1)
		movers.Place(grid, scout, land[0].Coord)
	}
	water := grid.FilterByTerrain(terrain.Coast)
	if len(water) > 0 {
		galley := turn.NewMover("demo", path.Naval, 4, 1)
		movers.Place(grid, galley, water[0].Coord)
	}
}
