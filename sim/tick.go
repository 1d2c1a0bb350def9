package sim

import "github.com/Kromtec/Vivarium-sub001/systems"

// Step advances the simulation by one tick: for each live agent, Think on a
// deterministic half-population cadence, Act every tick, then aging and
// metabolism; finally plant growth and reproduction. Agents born during the
// tick occupy later (or recycled earlier) slots and simply join the scan
// wherever they land; the order is a design choice, but it is deterministic
// for a given seed.
func (w *World) Step() {
	w.tick++

	for i := 0; i < len(w.agents); i++ {
		a := &w.agents[i]
		if !a.Alive {
			continue
		}

		// Think is time-sliced: half the population per tick, alternating
		// by slot parity, to bound the per-tick CPU cost.
		if (int64(i)+w.tick)%2 == 0 {
			w.think(a)
		}

		w.act(int32(i), a)
		if !a.Alive {
			continue
		}

		ecfg := &w.cfg.Energy
		mult := systems.DietMultiplier(a.Diet,
			ecfg.CarnivoreMultiplier, ecfg.OmnivoreMultiplier, ecfg.HerbivoreMultiplier)
		a.Energy -= systems.MetabolicCost(a, ecfg.BaseMetabolism, ecfg.AgingFactor, ecfg.EfficiencyBonus, mult)
		if a.Energy <= 0 {
			w.killAgent(int32(i))
			continue
		}
		a.Age++
	}

	w.updatePlants()
}
