// Package sim owns the population arenas and the toroidal grid and drives
// the tick loop: spawn, sense/think/act, aging and metabolism, plant growth.
//
// A single logical thread mutates the world; the scan order over arena slots
// is deterministic for a given seed so evolution runs are reproducible.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/config"
	"github.com/Kromtec/Vivarium-sub001/genome"
	"github.com/Kromtec/Vivarium-sub001/neural"
	"github.com/Kromtec/Vivarium-sub001/systems"
)

// Recorder receives lifecycle events for logging collaborators. The world
// never blocks on it.
type Recorder interface {
	RecordBirth(diet genome.Diet)
	RecordDeath(diet genome.Diet)
	RecordKill()
}

type nopRecorder struct{}

func (nopRecorder) RecordBirth(genome.Diet) {}
func (nopRecorder) RecordDeath(genome.Diet) {}
func (nopRecorder) RecordKill()             {}

// Options configures world construction.
type Options struct {
	Seed     int64 // overrides config seed when non-zero
	Recorder Recorder
}

// World holds the complete simulation state. Populations live in
// fixed-capacity arenas addressed by slot index; dead slots are recycled
// through free lists. The grid and the arenas are kept mutually consistent,
// and any violation is a logic error that fails fast.
type World struct {
	cfg  *config.Config
	rng  *rand.Rand
	topo *neural.Topology
	grid *components.Grid

	sectors *systems.SectorTable

	agents     []components.Agent
	plants     []components.Plant
	structures []components.Structure
	freeAgents []int32
	freePlants []int32

	// scratch is the propagation accumulator, reused across agents; safe
	// because the tick is single-threaded.
	scratch []float64

	tick   int64
	seed   int64
	nextID uint32
	rec    Recorder
}

// NewWorld validates the configuration, builds the static topology and
// perception tables, and runs the startup spawn phase.
func NewWorld(cfg *config.Config, opts Options) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	topo, err := neural.NewTopology(cfg.Neural.Neurons)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.World.Seed
	}

	rec := opts.Recorder
	if rec == nil {
		rec = nopRecorder{}
	}

	w := &World{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		topo:    topo,
		grid:    components.NewGrid(cfg.World.Width, cfg.World.Height),
		sectors: systems.NewSectorTable(cfg.Perception.DirectionalRadius),

		// Arenas are allocated at full capacity up front so slot pointers
		// stay valid while births append mid-tick.
		agents:     make([]components.Agent, 0, cfg.World.AgentPool),
		plants:     make([]components.Plant, 0, cfg.World.PlantPool),
		structures: make([]components.Structure, 0, cfg.World.StructurePool),

		scratch: make([]float64, cfg.Neural.Neurons),
		seed:    seed,
		nextID:  1,
		rec:     rec,
	}

	if err := w.spawnAll(); err != nil {
		return nil, err
	}
	return w, nil
}

// Tick returns the current tick counter.
func (w *World) Tick() int64 { return w.tick }

// Seed returns the seed the run was started from.
func (w *World) Seed() int64 { return w.seed }

// occupy claims a grid cell for an entity. Claiming a non-empty cell means
// the grid and the arenas have diverged; that is unrecoverable.
func (w *World) occupy(x, y int, kind components.EntityKind, idx int32) {
	if c := w.grid.At(x, y); c.Kind != components.KindEmpty {
		panic(fmt.Sprintf("sim: cell (%d,%d) already holds %s #%d while placing %s #%d",
			x, y, c.Kind, c.Index, kind, idx))
	}
	w.grid.Set(x, y, components.GridCell{Kind: kind, Index: idx})
}

// vacate releases a grid cell, verifying it was held by the expected entity.
func (w *World) vacate(x, y int, kind components.EntityKind, idx int32) {
	if c := w.grid.At(x, y); c.Kind != kind || c.Index != idx {
		panic(fmt.Sprintf("sim: cell (%d,%d) holds %s #%d, expected %s #%d",
			x, y, c.Kind, c.Index, kind, idx))
	}
	w.grid.Clear(x, y)
}

// killAgent marks an agent dead, vacates its cell, and recycles the slot.
func (w *World) killAgent(idx int32) {
	a := &w.agents[idx]
	a.Alive = false
	w.vacate(a.X, a.Y, components.KindAgent, idx)
	w.freeAgents = append(w.freeAgents, idx)
	w.rec.RecordDeath(a.Diet)
}

// killPlant removes a depleted plant.
func (w *World) killPlant(idx int32) {
	p := &w.plants[idx]
	p.Alive = false
	w.vacate(p.X, p.Y, components.KindPlant, idx)
	w.freePlants = append(w.freePlants, idx)
}

// CheckConsistency verifies the grid/arena invariant both ways: every
// non-empty cell points at a live entity of the declared kind at the declared
// position, and every live entity owns exactly one cell.
func (w *World) CheckConsistency() error {
	occupied := 0
	for y := 0; y < w.grid.Height; y++ {
		for x := 0; x < w.grid.Width; x++ {
			c := w.grid.At(x, y)
			switch c.Kind {
			case components.KindEmpty:
				continue
			case components.KindAgent:
				a := &w.agents[c.Index]
				if !a.Alive || a.X != x || a.Y != y {
					return fmt.Errorf("cell (%d,%d) points at agent #%d (alive=%v at %d,%d)",
						x, y, c.Index, a.Alive, a.X, a.Y)
				}
			case components.KindPlant:
				p := &w.plants[c.Index]
				if !p.Alive || p.X != x || p.Y != y {
					return fmt.Errorf("cell (%d,%d) points at plant #%d (alive=%v at %d,%d)",
						x, y, c.Index, p.Alive, p.X, p.Y)
				}
			case components.KindStructure:
				s := &w.structures[c.Index]
				if !s.Alive || s.X != x || s.Y != y {
					return fmt.Errorf("cell (%d,%d) points at structure #%d (alive=%v at %d,%d)",
						x, y, c.Index, s.Alive, s.X, s.Y)
				}
			}
			occupied++
		}
	}

	live := 0
	for i := range w.agents {
		if w.agents[i].Alive {
			live++
		}
	}
	for i := range w.plants {
		if w.plants[i].Alive {
			live++
		}
	}
	for i := range w.structures {
		if w.structures[i].Alive {
			live++
		}
	}
	if live != occupied {
		return fmt.Errorf("%d live entities but %d occupied cells", live, occupied)
	}
	return nil
}
