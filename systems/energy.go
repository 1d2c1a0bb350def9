package systems

import (
	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
)

// DietMultiplier selects the metabolic multiplier for a diet.
func DietMultiplier(d genome.Diet, carnivore, omnivore, herbivore float64) float64 {
	switch d {
	case genome.DietCarnivore:
		return carnivore
	case genome.DietHerbivore:
		return herbivore
	default:
		return omnivore
	}
}

// MetabolicCost is the continuous per-tick energy drain, applied regardless
// of action: base rate scaled by the diet multiplier, aged by
// (1 + age*agingFactor), and discounted by the metabolic-efficiency trait.
func MetabolicCost(a *components.Agent, base, agingFactor, efficiencyBonus, dietMult float64) float64 {
	cost := base * dietMult * (1 + float64(a.Age)*agingFactor)
	return cost * (1 - a.Traits.MetabolicEfficiency*efficiencyBonus)
}

// Transfer summarizes one attack's energy movement.
type Transfer struct {
	Damage float64
	Gained float64
	Killed bool
}

// AttackTransfer applies strength-scaled damage to the target and credits the
// attacker with gainFraction of it, capped at maxEnergy. The caller removes
// the target if Killed.
func AttackTransfer(attacker, target *components.Agent, damage, gainFraction, maxEnergy float64) Transfer {
	t := Transfer{Damage: damage}

	target.Energy -= damage
	if target.Energy <= 0 {
		t.Killed = true
	}

	gain := damage * gainFraction
	if attacker.Energy+gain > maxEnergy {
		gain = maxEnergy - attacker.Energy
	}
	if gain > 0 {
		attacker.Energy += gain
		t.Gained = gain
	}
	return t
}
