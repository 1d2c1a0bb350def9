package components

import (
	"github.com/Kromtec/Vivarium-sub001/genome"
	"github.com/Kromtec/Vivarium-sub001/neural"
)

// Agent is one autonomous organism. Agents live in a fixed-capacity arena and
// are addressed by slot index; a dead agent's slot may be reused by a later
// spawn. All per-tick mutation goes through the scheduler (single writer).
type Agent struct {
	ID         uint32
	ParentID   uint32
	Generation int

	X, Y   int
	Energy float64
	Age    int

	Diet   genome.Diet
	Traits genome.Traits
	Genome genome.Genome

	// Conns is the genome decoded through the topology maps, cached at
	// assembly; Activations is the neuron substrate, persistent across ticks
	// for hidden-state memory.
	Conns       []neural.Conn
	Activations []float64

	Cooldowns [neural.NumActions]int16
	Color     [3]uint8

	// Threatened is set by the perception scan during Think and consumed by
	// the instinct layer during Act.
	Threatened bool

	Alive bool
}

// EnergyRatio returns energy normalized by the configured maximum.
func (a *Agent) EnergyRatio(maxEnergy float64) float64 {
	if maxEnergy <= 0 {
		return 0
	}
	return a.Energy / maxEnergy
}

// Plant is a stationary energy source that photosynthesizes and seeds
// adjacent cells.
type Plant struct {
	X, Y   int
	Energy float64
	Age    int
	Alive  bool
}

// Structure is static scenery; it only matters as a perception target and an
// obstacle.
type Structure struct {
	X, Y  int
	Alive bool
}
