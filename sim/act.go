package sim

import (
	"math"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
	"github.com/Kromtec/Vivarium-sub001/neural"
	"github.com/Kromtec/Vivarium-sub001/systems"
)

// act reads the action region, layers the instinct biases on top, and
// executes the single highest-valued action above the activation threshold
// whose cooldown has expired. Ties resolve to the lower action index.
func (w *World) act(idx int32, a *components.Agent) {
	for k := range a.Cooldowns {
		if a.Cooldowns[k] > 0 {
			a.Cooldowns[k]--
		}
	}

	cfg := w.cfg
	var biased [neural.NumActions]float64
	copy(biased[:], a.Activations[neural.ActionsStart:neural.HiddenStart])

	systems.ApplyInstincts(biased[:], a, a.EnergyRatio(cfg.Energy.MaxEnergy),
		cfg.Actions.MaturityAge, systems.InstinctParams{
			FeedingThreshold:      cfg.Instinct.FeedingThreshold,
			ReproductionThreshold: cfg.Instinct.ReproductionThreshold,
			HuntingThreshold:      cfg.Instinct.HuntingThreshold,
			FleeBias:              cfg.Instinct.FleeBias,
			FeedBias:              cfg.Instinct.FeedBias,
			AttackBias:            cfg.Instinct.AttackBias,
			ReproduceBias:         cfg.Instinct.ReproduceBias,
		})

	chosen := neural.Action(-1)
	best := cfg.Neural.ActivationThreshold
	for k := 0; k < neural.NumActions; k++ {
		if a.Cooldowns[k] > 0 {
			continue
		}
		if biased[k] > best {
			best = biased[k]
			chosen = neural.Action(k)
		}
	}
	if chosen < 0 {
		return
	}

	w.execute(idx, a, chosen)
}

// execute applies one action's world effects, energy cost, and cooldown.
func (w *World) execute(idx int32, a *components.Agent, action neural.Action) {
	acfg := &w.cfg.Actions

	switch {
	case action.IsMove():
		w.moveAgent(idx, a, int(action), 1.0)
		a.Cooldowns[action] = int16(acfg.MoveCooldown)

	case action == neural.ActFlee:
		w.moveAgent(idx, a, w.fleeDirection(a), acfg.FleeMultiplier)
		a.Cooldowns[action] = int16(acfg.FleeCooldown)

	case action == neural.ActEat:
		w.eat(a)
		a.Cooldowns[action] = int16(acfg.EatCooldown)

	case action == neural.ActAttack:
		w.attack(idx, a)
		a.Cooldowns[action] = int16(acfg.AttackCooldown)

	case action == neural.ActReproduce:
		w.reproduce(a)

	case action == neural.ActSuicide:
		// Deliberate zero-cost death, gated on age.
		if a.Age >= acfg.SuicideAge {
			w.killAgent(idx)
		}
	}
}

// moveAgent steps one cell in the given compass direction, paying the
// movement cost whether or not the destination was free; diagonal steps cost
// sqrt(2) times the base.
func (w *World) moveAgent(idx int32, a *components.Agent, dir int, costMult float64) {
	off := adjacentOffsets[dir]
	dist := 1.0
	if off[0] != 0 && off[1] != 0 {
		dist = math.Sqrt2
	}
	a.Energy -= w.cfg.Actions.MoveCost * dist * costMult

	nx, ny := w.grid.Wrap(a.X+off[0], a.Y+off[1])
	if w.grid.At(nx, ny).Kind != components.KindEmpty {
		return
	}
	w.vacate(a.X, a.Y, components.KindAgent, idx)
	w.occupy(nx, ny, components.KindAgent, idx)
	a.X, a.Y = nx, ny
}

// fleeDirection picks the emptiest compass sector by the agent-density
// sensors from the last scan. Stale by up to one think slice, which is fine:
// fleeing needs a fast answer, not a fresh one.
func (w *World) fleeDirection(a *components.Agent) int {
	best := 0
	bestV := a.Activations[neural.SensorAgentDir]
	for s := 1; s < systems.NumSectors; s++ {
		if v := a.Activations[neural.SensorAgentDir+s]; v < bestV {
			bestV = v
			best = s
		}
	}
	return best
}

// eat bites the first adjacent plant; the yield depends on diet.
func (w *World) eat(a *components.Agent) {
	acfg := &w.cfg.Actions
	a.Energy -= acfg.EatCost

	for _, off := range adjacentOffsets {
		cell := w.grid.At(a.X+off[0], a.Y+off[1])
		if cell.Kind != components.KindPlant {
			continue
		}

		p := &w.plants[cell.Index]
		bite := acfg.EatAmount
		if bite > p.Energy {
			bite = p.Energy
		}

		var yield float64
		switch a.Diet {
		case genome.DietHerbivore:
			yield = acfg.HerbivoreEatYield
		case genome.DietCarnivore:
			yield = acfg.CarnivoreEatYield
		default:
			yield = acfg.OmnivoreEatYield
		}

		a.Energy += bite * yield
		if a.Energy > w.cfg.Energy.MaxEnergy {
			a.Energy = w.cfg.Energy.MaxEnergy
		}

		p.Energy -= bite
		if p.Energy <= 0 {
			w.killPlant(cell.Index)
		}
		return
	}
}

// attack strikes the first adjacent agent with strength-scaled damage and
// absorbs part of it.
func (w *World) attack(idx int32, a *components.Agent) {
	acfg := &w.cfg.Actions
	a.Energy -= acfg.AttackCost

	for _, off := range adjacentOffsets {
		cell := w.grid.At(a.X+off[0], a.Y+off[1])
		if cell.Kind != components.KindAgent {
			continue
		}

		target := &w.agents[cell.Index]
		damage := acfg.AttackDamage * (1 + acfg.StrengthFactor*a.Traits.Strength)
		xfer := systems.AttackTransfer(a, target, damage, acfg.AttackGain, w.cfg.Energy.MaxEnergy)
		if xfer.Killed {
			w.killAgent(cell.Index)
			w.rec.RecordKill()
		}
		return
	}
}

// reproduce spawns a mutated child into an adjacent empty cell. The parent
// pays an overhead fraction of max energy plus the child's starting energy,
// and must keep a minimum buffer afterwards; if any condition fails, nothing
// is spent and no cooldown starts.
func (w *World) reproduce(a *components.Agent) {
	acfg := &w.cfg.Actions
	if a.Age < acfg.MaturityAge {
		return
	}

	cost := acfg.ReproduceOverhead*w.cfg.Energy.MaxEnergy + acfg.ChildEnergy
	if a.Energy-cost < acfg.MinEnergyBuffer {
		return
	}

	nx, ny, ok := w.adjacentEmpty(a.X, a.Y)
	if !ok {
		return
	}

	child := genome.Replicate(a.Genome, w.rng, w.cfg.Genome.MutationRate)
	slot, ok := w.spawnAgent(nx, ny, child, a.Generation+1, a.ID, acfg.ChildEnergy)
	if !ok {
		return // pool exhausted
	}

	a.Energy -= cost
	a.Cooldowns[neural.ActReproduce] = int16(acfg.ReproduceCooldown)
	w.rec.RecordBirth(w.agents[slot].Diet)
}
