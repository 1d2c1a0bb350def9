package sim

import (
	"github.com/Kromtec/Vivarium-sub001/genome"
	"github.com/Kromtec/Vivarium-sub001/neural"
)

// AgentView is a read-only copy of one agent for renderers, inspectors, and
// census tooling. Genome and activation slices are deep copies; consumers
// can hold them across ticks.
type AgentView struct {
	ID         uint32 `json:"id"`
	ParentID   uint32 `json:"parent_id"`
	Generation int    `json:"generation"`

	X      int     `json:"x"`
	Y      int     `json:"y"`
	Energy float64 `json:"energy"`
	Age    int     `json:"age"`

	Diet       string        `json:"diet"`
	Color      [3]uint8      `json:"color"`
	GenomeHash uint64        `json:"genome_hash"`
	Traits     genome.Traits `json:"traits"`

	Cooldowns [neural.NumActions]int16 `json:"cooldowns"`

	Genome      genome.Genome `json:"genome,omitempty"`
	Activations []float64     `json:"activations,omitempty"`
}

// PlantView is a read-only copy of one plant.
type PlantView struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Energy float64 `json:"energy"`
	Age    int     `json:"age"`
}

// StructureView is a read-only copy of one structure.
type StructureView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snapshot is a consistent read-only view of the population, taken between
// ticks. The core never blocks on its consumers.
type Snapshot struct {
	Tick int64 `json:"tick"`
	Seed int64 `json:"seed"`

	Agents     []AgentView     `json:"agents"`
	Plants     []PlantView     `json:"plants"`
	Structures []StructureView `json:"structures"`
}

// Snapshot copies the live population.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{Tick: w.tick, Seed: w.seed}

	for i := range w.agents {
		a := &w.agents[i]
		if !a.Alive {
			continue
		}
		g := make(genome.Genome, len(a.Genome))
		copy(g, a.Genome)
		acts := make([]float64, len(a.Activations))
		copy(acts, a.Activations)

		s.Agents = append(s.Agents, AgentView{
			ID:          a.ID,
			ParentID:    a.ParentID,
			Generation:  a.Generation,
			X:           a.X,
			Y:           a.Y,
			Energy:      a.Energy,
			Age:         a.Age,
			Diet:        a.Diet.String(),
			Color:       a.Color,
			GenomeHash:  a.Genome.Hash(),
			Traits:      a.Traits,
			Cooldowns:   a.Cooldowns,
			Genome:      g,
			Activations: acts,
		})
	}

	for i := range w.plants {
		p := &w.plants[i]
		if !p.Alive {
			continue
		}
		s.Plants = append(s.Plants, PlantView{X: p.X, Y: p.Y, Energy: p.Energy, Age: p.Age})
	}

	for i := range w.structures {
		st := &w.structures[i]
		if !st.Alive {
			continue
		}
		s.Structures = append(s.Structures, StructureView{X: st.X, Y: st.Y})
	}

	return s
}

// Counts holds per-tick population totals for the logger collaborator.
type Counts struct {
	Carnivores int
	Omnivores  int
	Herbivores int
	Plants     int
	Structures int
}

// Agents returns the total live agent count.
func (c Counts) Agents() int {
	return c.Carnivores + c.Omnivores + c.Herbivores
}

// Counts tallies the live population by diet.
func (w *World) Counts() Counts {
	var c Counts
	for i := range w.agents {
		a := &w.agents[i]
		if !a.Alive {
			continue
		}
		switch a.Diet {
		case genome.DietCarnivore:
			c.Carnivores++
		case genome.DietOmnivore:
			c.Omnivores++
		case genome.DietHerbivore:
			c.Herbivores++
		}
	}
	for i := range w.plants {
		if w.plants[i].Alive {
			c.Plants++
		}
	}
	for i := range w.structures {
		if w.structures[i].Alive {
			c.Structures++
		}
	}
	return c
}
