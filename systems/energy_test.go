package systems

import (
	"math"
	"testing"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
)

func TestDietMultiplier(t *testing.T) {
	if m := DietMultiplier(genome.DietCarnivore, 0.85, 1.0, 1.1); m != 0.85 {
		t.Errorf("carnivore multiplier = %v", m)
	}
	if m := DietMultiplier(genome.DietOmnivore, 0.85, 1.0, 1.1); m != 1.0 {
		t.Errorf("omnivore multiplier = %v", m)
	}
	if m := DietMultiplier(genome.DietHerbivore, 0.85, 1.0, 1.1); m != 1.1 {
		t.Errorf("herbivore multiplier = %v", m)
	}
}

func TestMetabolicCost(t *testing.T) {
	a := &components.Agent{}

	// A newborn with neutral traits pays exactly the diet-scaled base rate.
	if c := MetabolicCost(a, 0.12, 0.001, 0.3, 1.0); math.Abs(c-0.12) > 1e-15 {
		t.Errorf("newborn cost = %v, want 0.12", c)
	}

	// Aging raises it linearly.
	a.Age = 1000
	want := 0.12 * (1 + 1000*0.001)
	if c := MetabolicCost(a, 0.12, 0.001, 0.3, 1.0); math.Abs(c-want) > 1e-12 {
		t.Errorf("aged cost = %v, want %v", c, want)
	}

	// Efficiency discounts it.
	a.Traits.MetabolicEfficiency = 1.0
	if c := MetabolicCost(a, 0.12, 0.001, 0.3, 1.0); math.Abs(c-want*0.7) > 1e-12 {
		t.Errorf("efficient cost = %v, want %v", c, want*0.7)
	}
}

func TestAttackTransfer(t *testing.T) {
	attacker := &components.Agent{Energy: 50}
	target := &components.Agent{Energy: 30}

	tr := AttackTransfer(attacker, target, 10, 0.5, 100)
	if tr.Killed {
		t.Error("target at 20 energy reported killed")
	}
	if target.Energy != 20 {
		t.Errorf("target energy = %v, want 20", target.Energy)
	}
	if tr.Gained != 5 || attacker.Energy != 55 {
		t.Errorf("gain = %v, attacker energy = %v", tr.Gained, attacker.Energy)
	}

	tr = AttackTransfer(attacker, target, 25, 0.5, 100)
	if !tr.Killed {
		t.Error("lethal hit not reported as kill")
	}
}

func TestAttackTransferCapsGain(t *testing.T) {
	attacker := &components.Agent{Energy: 98}
	target := &components.Agent{Energy: 50}

	tr := AttackTransfer(attacker, target, 10, 0.5, 100)
	if tr.Gained != 2 {
		t.Errorf("gain = %v, want capped 2", tr.Gained)
	}
	if attacker.Energy != 100 {
		t.Errorf("attacker energy = %v, want 100", attacker.Energy)
	}
}
