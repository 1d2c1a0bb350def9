package systems

import (
	"testing"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
	"github.com/Kromtec/Vivarium-sub001/neural"
)

var testInstincts = InstinctParams{
	FeedingThreshold:      0.4,
	ReproductionThreshold: 0.75,
	HuntingThreshold:      0.5,
	FleeBias:              0.3,
	FeedBias:              0.25,
	AttackBias:            0.3,
	ReproduceBias:         0.35,
}

func TestApplyInstinctsThreat(t *testing.T) {
	biased := make([]float64, neural.NumActions)
	a := &components.Agent{Diet: genome.DietHerbivore, Threatened: true}

	ApplyInstincts(biased, a, 0.6, 100, testInstincts)

	if biased[neural.ActFlee] != testInstincts.FleeBias {
		t.Errorf("flee bias = %v, want %v", biased[neural.ActFlee], testInstincts.FleeBias)
	}
	if biased[neural.ActEat] != 0 || biased[neural.ActAttack] != 0 || biased[neural.ActReproduce] != 0 {
		t.Errorf("sated threatened herbivore gained unrelated biases: %v", biased)
	}
}

func TestApplyInstinctsHunger(t *testing.T) {
	biased := make([]float64, neural.NumActions)
	a := &components.Agent{Diet: genome.DietHerbivore}

	ApplyInstincts(biased, a, 0.2, 100, testInstincts)

	if biased[neural.ActEat] != testInstincts.FeedBias {
		t.Errorf("eat bias = %v, want %v", biased[neural.ActEat], testInstincts.FeedBias)
	}
	for act := neural.ActMoveNorth; act <= neural.ActMoveNorthwest; act++ {
		if biased[act] != testInstincts.FeedBias*0.5 {
			t.Errorf("move bias for %v = %v, want %v", act, biased[act], testInstincts.FeedBias*0.5)
		}
	}
	// Herbivores never get an attack urge, hungry or not.
	if biased[neural.ActAttack] != 0 {
		t.Errorf("hungry herbivore gained attack bias %v", biased[neural.ActAttack])
	}
}

func TestApplyInstinctsHunting(t *testing.T) {
	biased := make([]float64, neural.NumActions)
	a := &components.Agent{Diet: genome.DietCarnivore}

	ApplyInstincts(biased, a, 0.45, 100, testInstincts)

	if biased[neural.ActAttack] != testInstincts.AttackBias {
		t.Errorf("attack bias = %v, want %v", biased[neural.ActAttack], testInstincts.AttackBias)
	}
}

func TestApplyInstinctsReproduction(t *testing.T) {
	a := &components.Agent{Diet: genome.DietOmnivore, Age: 150}

	biased := make([]float64, neural.NumActions)
	ApplyInstincts(biased, a, 0.9, 100, testInstincts)
	if biased[neural.ActReproduce] != testInstincts.ReproduceBias {
		t.Errorf("reproduce bias = %v, want %v", biased[neural.ActReproduce], testInstincts.ReproduceBias)
	}

	// Immature agents get no urge.
	a.Age = 50
	biased = make([]float64, neural.NumActions)
	ApplyInstincts(biased, a, 0.9, 100, testInstincts)
	if biased[neural.ActReproduce] != 0 {
		t.Errorf("immature agent gained reproduce bias %v", biased[neural.ActReproduce])
	}

	// Neither do agents still on cooldown.
	a.Age = 150
	a.Cooldowns[neural.ActReproduce] = 5
	biased = make([]float64, neural.NumActions)
	ApplyInstincts(biased, a, 0.9, 100, testInstincts)
	if biased[neural.ActReproduce] != 0 {
		t.Errorf("cooling agent gained reproduce bias %v", biased[neural.ActReproduce])
	}
}

func TestApplyInstinctsAdditive(t *testing.T) {
	biased := make([]float64, neural.NumActions)
	biased[neural.ActFlee] = 0.2

	a := &components.Agent{Diet: genome.DietOmnivore, Threatened: true}
	ApplyInstincts(biased, a, 0.6, 100, testInstincts)

	if biased[neural.ActFlee] != 0.2+testInstincts.FleeBias {
		t.Errorf("flee bias not additive: %v", biased[neural.ActFlee])
	}
}
