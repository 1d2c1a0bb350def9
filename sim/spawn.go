package sim

import (
	"fmt"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
	"github.com/Kromtec/Vivarium-sub001/neural"
)

// adjacentOffsets is the fixed neighbor scan order: north first, clockwise.
var adjacentOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// spawnAll runs the startup placement: structures, then plants, then agents.
// Structures and plants grow in clusters; with the configured probability a
// new entity attaches next to a randomly chosen already-placed entity of the
// same kind, otherwise it takes a uniformly random empty cell.
func (w *World) spawnAll() error {
	var placed [][2]int
	for i := 0; i < w.cfg.Spawn.Structures; i++ {
		x, y, ok := w.clusterSpot(placed)
		if !ok {
			return fmt.Errorf("sim: no empty cell for structure %d", i)
		}
		w.spawnStructure(x, y)
		placed = append(placed, [2]int{x, y})
	}

	placed = placed[:0]
	for i := 0; i < w.cfg.Spawn.Plants; i++ {
		x, y, ok := w.clusterSpot(placed)
		if !ok {
			return fmt.Errorf("sim: no empty cell for plant %d", i)
		}
		w.spawnPlant(x, y, w.cfg.Plants.InitialEnergy)
		placed = append(placed, [2]int{x, y})
	}

	for i := 0; i < w.cfg.Spawn.Agents; i++ {
		x, y, ok := w.randomEmptyCell()
		if !ok {
			return fmt.Errorf("sim: no empty cell for agent %d", i)
		}
		g := genome.New(w.rng, w.cfg.Genome.Length, w.cfg.Genome.InitialWeightRange)
		if _, ok := w.spawnAgent(x, y, g, 0, 0, w.cfg.Energy.InitialEnergy); !ok {
			return fmt.Errorf("sim: agent pool exhausted at founder %d", i)
		}
	}
	return nil
}

// clusterSpot picks a position for clustered growth: adjacent to a random
// already-placed entity when the dice allow and a free neighbor exists,
// otherwise a uniformly random empty cell.
func (w *World) clusterSpot(placed [][2]int) (int, int, bool) {
	if len(placed) > 0 && w.rng.Float64() < w.cfg.Spawn.ClusterChance {
		p := placed[w.rng.Intn(len(placed))]
		if x, y, ok := w.adjacentEmpty(p[0], p[1]); ok {
			return x, y, true
		}
	}
	return w.randomEmptyCell()
}

// randomEmptyCell samples uniformly for an empty cell, falling back to a
// linear scan from a random start so placement stays total while the grid
// has any room left.
func (w *World) randomEmptyCell() (int, int, bool) {
	for try := 0; try < 1000; try++ {
		x := w.rng.Intn(w.grid.Width)
		y := w.rng.Intn(w.grid.Height)
		if w.grid.At(x, y).Kind == components.KindEmpty {
			return x, y, true
		}
	}

	n := w.grid.Width * w.grid.Height
	start := w.rng.Intn(n)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		x, y := idx%w.grid.Width, idx/w.grid.Width
		if w.grid.At(x, y).Kind == components.KindEmpty {
			return x, y, true
		}
	}
	return 0, 0, false
}

// adjacentEmpty returns the first empty neighbor in fixed scan order.
func (w *World) adjacentEmpty(x, y int) (int, int, bool) {
	for _, off := range adjacentOffsets {
		nx, ny := w.grid.Wrap(x+off[0], y+off[1])
		if w.grid.At(nx, ny).Kind == components.KindEmpty {
			return nx, ny, true
		}
	}
	return 0, 0, false
}

// spawnAgent assembles an agent from a genome and places it: traits decoded
// from the trait-gene region, diet classified from the trophic bias, the
// connection cache compiled through the topology maps, and a display color
// derived from the genome hash.
func (w *World) spawnAgent(x, y int, g genome.Genome, generation int, parentID uint32, energy float64) (int32, bool) {
	slot, ok := w.allocAgent()
	if !ok {
		return 0, false
	}

	gcfg := &w.cfg.Genome
	traits := g.DecodeTraits(gcfg.TraitGenes, gcfg.TraitNormalization)
	hash := g.Hash()

	w.agents[slot] = components.Agent{
		ID:          w.nextID,
		ParentID:    parentID,
		Generation:  generation,
		X:           x,
		Y:           y,
		Energy:      energy,
		Diet:        genome.ClassifyDiet(traits.TrophicBias, gcfg.CarnivoreThreshold, gcfg.HerbivoreThreshold),
		Traits:      traits,
		Genome:      g,
		Conns:       neural.Compile(g, w.topo, gcfg.TraitGenes),
		Activations: make([]float64, w.topo.Neurons),
		Color:       [3]uint8{uint8(hash), uint8(hash >> 8), uint8(hash >> 16)},
		Alive:       true,
	}
	w.nextID++
	w.occupy(x, y, components.KindAgent, slot)
	return slot, true
}

// spawnPlant places a plant.
func (w *World) spawnPlant(x, y int, energy float64) (int32, bool) {
	slot, ok := w.allocPlant()
	if !ok {
		return 0, false
	}
	w.plants[slot] = components.Plant{X: x, Y: y, Energy: energy, Alive: true}
	w.occupy(x, y, components.KindPlant, slot)
	return slot, true
}

// spawnStructure places a structure.
func (w *World) spawnStructure(x, y int) (int32, bool) {
	if len(w.structures) >= cap(w.structures) {
		return 0, false
	}
	w.structures = append(w.structures, components.Structure{X: x, Y: y, Alive: true})
	slot := int32(len(w.structures) - 1)
	w.occupy(x, y, components.KindStructure, slot)
	return slot, true
}

// allocAgent hands out an arena slot, recycling freed slots first. Appends
// never exceed the preallocated capacity, so slot pointers held during a
// tick stay valid.
func (w *World) allocAgent() (int32, bool) {
	if n := len(w.freeAgents); n > 0 {
		slot := w.freeAgents[n-1]
		w.freeAgents = w.freeAgents[:n-1]
		return slot, true
	}
	if len(w.agents) >= cap(w.agents) {
		return 0, false
	}
	w.agents = append(w.agents, components.Agent{})
	return int32(len(w.agents) - 1), true
}

func (w *World) allocPlant() (int32, bool) {
	if n := len(w.freePlants); n > 0 {
		slot := w.freePlants[n-1]
		w.freePlants = w.freePlants[:n-1]
		return slot, true
	}
	if len(w.plants) >= cap(w.plants) {
		return 0, false
	}
	w.plants = append(w.plants, components.Plant{})
	return int32(len(w.plants) - 1), true
}
