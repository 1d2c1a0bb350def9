package sim

// updatePlants applies aging and photosynthesis to every live plant and lets
// mature, charged plants seed an adjacent empty cell with a fixed per-tick
// probability, splitting their energy with the seedling.
func (w *World) updatePlants() {
	pcfg := &w.cfg.Plants

	for i := 0; i < len(w.plants); i++ {
		p := &w.plants[i]
		if !p.Alive {
			continue
		}

		p.Age++
		p.Energy += pcfg.PhotosynthesisRate
		if p.Energy > pcfg.MaxEnergy {
			p.Energy = pcfg.MaxEnergy
		}

		if p.Age < pcfg.MaturityAge || p.Energy < pcfg.ReproduceThreshold {
			continue
		}
		if w.rng.Float64() >= pcfg.ReproduceChance {
			continue
		}

		nx, ny, ok := w.adjacentEmpty(p.X, p.Y)
		if !ok {
			continue
		}

		half := p.Energy / 2
		p.Energy -= half
		w.spawnPlant(nx, ny, half)
	}
}
