package sim

import (
	"math"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/neural"
	"github.com/Kromtec/Vivarium-sub001/systems"
)

// think populates the agent's sensor region and runs one forward pass.
func (w *World) think(a *components.Agent) {
	cfg := w.cfg
	acts := a.Activations

	acts[neural.SensorPosX] = axisNorm(a.X, w.grid.Width)
	acts[neural.SensorPosY] = axisNorm(a.Y, w.grid.Height)
	acts[neural.SensorRandom] = w.rng.Float64()*2 - 1
	acts[neural.SensorEnergy] = a.EnergyRatio(cfg.Energy.MaxEnergy)

	age := float64(a.Age) / cfg.Neural.AgeScale
	if age > 1 {
		age = 1
	}
	acts[neural.SensorAge] = age
	acts[neural.SensorOscillator] = math.Sin(2 * math.Pi * float64(w.tick) / cfg.Neural.OscillatorPeriod)

	acts[neural.SensorStrength] = a.Traits.Strength
	acts[neural.SensorBravery] = a.Traits.Bravery
	acts[neural.SensorMetabolicEfficiency] = a.Traits.MetabolicEfficiency
	acts[neural.SensorPerception] = a.Traits.Perception
	acts[neural.SensorSpeed] = a.Traits.Speed
	acts[neural.SensorTrophicBias] = a.Traits.TrophicBias
	acts[neural.SensorConstitution] = a.Traits.Constitution

	scan := systems.ScanCombined(w.grid, w.agents, a,
		cfg.Perception.LocalRadius, cfg.Perception.DirectionalRadius, w.sectors)
	a.Threatened = scan.Threat

	acts[neural.SensorAgentDensity] = scan.Local.Agents
	acts[neural.SensorPlantDensity] = scan.Local.Plants
	acts[neural.SensorStructureDensity] = scan.Local.Structures
	for s := 0; s < systems.NumSectors; s++ {
		acts[neural.SensorAgentDir+s] = scan.Directional.Agents[s]
		acts[neural.SensorPlantDir+s] = scan.Directional.Plants[s]
		acts[neural.SensorStructureDir+s] = scan.Directional.Structures[s]
	}

	neural.Propagate(acts, a.Conns, cfg.Neural.DecayFactor, w.scratch)
}

// axisNorm maps a grid coordinate to [-1, 1].
func axisNorm(v, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(v)/float64(size-1)*2 - 1
}
