package systems

import (
	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
	"github.com/Kromtec/Vivarium-sub001/neural"
)

// InstinctParams holds the hard-wired bias layer's thresholds and magnitudes.
type InstinctParams struct {
	FeedingThreshold      float64
	ReproductionThreshold float64
	HuntingThreshold      float64
	FleeBias              float64
	FeedBias              float64
	AttackBias            float64
	ReproduceBias         float64
}

// ApplyInstincts adds survival/reproduction biases to a copy of the action
// activations before selection. Biases are additive: they tilt a responsive
// network toward urgent behaviors without overriding it.
//
//   - A detected threat urges fleeing.
//   - Low energy urges eating and movement (finding food needs both).
//   - High energy with maturity and a ready cooldown urges reproduction.
//   - A hungry carnivore or omnivore is urged to attack.
func ApplyInstincts(biased []float64, a *components.Agent, energyRatio float64, maturityAge int, p InstinctParams) {
	if a.Threatened {
		biased[neural.ActFlee] += p.FleeBias
	}

	if energyRatio < p.FeedingThreshold {
		biased[neural.ActEat] += p.FeedBias
		for act := neural.ActMoveNorth; act <= neural.ActMoveNorthwest; act++ {
			biased[act] += p.FeedBias * 0.5
		}
	}

	if energyRatio > p.ReproductionThreshold &&
		a.Age >= maturityAge &&
		a.Cooldowns[neural.ActReproduce] == 0 {
		biased[neural.ActReproduce] += p.ReproduceBias
	}

	if a.Diet != genome.DietHerbivore && energyRatio < p.HuntingThreshold {
		biased[neural.ActAttack] += p.AttackBias
	}
}
