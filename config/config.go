// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
//
// World sizing (dimensions, pool capacities, seed) is immutable once a world
// has been constructed from it. Balance parameters (metabolism, thresholds,
// biases, mutation rate) are read every tick and may be changed between ticks.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Genome     GenomeConfig     `yaml:"genome"`
	Neural     NeuralConfig     `yaml:"neural"`
	Perception PerceptionConfig `yaml:"perception"`
	Energy     EnergyConfig     `yaml:"energy"`
	Actions    ActionsConfig    `yaml:"actions"`
	Instinct   InstinctConfig   `yaml:"instinct"`
	Plants     PlantsConfig     `yaml:"plants"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WorldConfig holds grid dimensions and arena capacities.
type WorldConfig struct {
	Width         int   `yaml:"width"`
	Height        int   `yaml:"height"`
	AgentPool     int   `yaml:"agent_pool"`     // max concurrent agents
	PlantPool     int   `yaml:"plant_pool"`     // max concurrent plants
	StructurePool int   `yaml:"structure_pool"` // max concurrent structures
	Seed          int64 `yaml:"seed"`           // 0 = caller picks
}

// GenomeConfig holds genome shape and mutation parameters.
// Length and trait_genes are fixed for the lifetime of a run; changing them
// invalidates every decoded index in the population.
type GenomeConfig struct {
	Length             int     `yaml:"length"`
	TraitGenes         int     `yaml:"trait_genes"`
	MutationRate       float64 `yaml:"mutation_rate"`        // per-gene single-bit-flip probability
	InitialWeightRange float64 `yaml:"initial_weight_range"` // uniform weight range for founders
	TraitNormalization float64 `yaml:"trait_normalization"`  // divisor before tanh squash
	CarnivoreThreshold float64 `yaml:"carnivore_threshold"`  // trophic bias below this = carnivore
	HerbivoreThreshold float64 `yaml:"herbivore_threshold"`  // trophic bias above this = herbivore
}

// NeuralConfig holds substrate and propagation parameters.
type NeuralConfig struct {
	Neurons             int     `yaml:"neurons"`              // total activation slots per agent
	DecayFactor         float64 `yaml:"decay_factor"`         // hidden blend: decay*old + (1-decay)*new
	ActivationThreshold float64 `yaml:"activation_threshold"` // minimum biased activation to fire an action
	OscillatorPeriod    float64 `yaml:"oscillator_period"`    // ticks per full sine cycle
	AgeScale            float64 `yaml:"age_scale"`            // ticks mapped to an age sensor of 1.0
}

// PerceptionConfig holds density scan radii.
type PerceptionConfig struct {
	LocalRadius       int `yaml:"local_radius"`
	DirectionalRadius int `yaml:"directional_radius"`
}

// EnergyConfig holds the metabolic economy.
type EnergyConfig struct {
	MaxEnergy           float64 `yaml:"max_energy"`
	InitialEnergy       float64 `yaml:"initial_energy"`
	BaseMetabolism      float64 `yaml:"base_metabolism"`  // drain per tick before multipliers
	AgingFactor         float64 `yaml:"aging_factor"`     // drain scales by (1 + age*this)
	EfficiencyBonus     float64 `yaml:"efficiency_bonus"` // drain scales by (1 - trait*this)
	CarnivoreMultiplier float64 `yaml:"carnivore_multiplier"`
	OmnivoreMultiplier  float64 `yaml:"omnivore_multiplier"`
	HerbivoreMultiplier float64 `yaml:"herbivore_multiplier"`
}

// ActionsConfig holds per-action costs, cooldowns, and gating thresholds.
type ActionsConfig struct {
	MoveCost       float64 `yaml:"move_cost"`       // per-step cost; diagonals pay sqrt(2) times this
	FleeMultiplier float64 `yaml:"flee_multiplier"` // flee movement cost multiplier

	EatAmount         float64 `yaml:"eat_amount"` // max energy bitten off a plant per eat
	EatCost           float64 `yaml:"eat_cost"`
	HerbivoreEatYield float64 `yaml:"herbivore_eat_yield"` // fraction of bitten plant energy gained
	OmnivoreEatYield  float64 `yaml:"omnivore_eat_yield"`
	CarnivoreEatYield float64 `yaml:"carnivore_eat_yield"`

	AttackDamage   float64 `yaml:"attack_damage"`
	AttackCost     float64 `yaml:"attack_cost"`
	AttackGain     float64 `yaml:"attack_gain"`     // fraction of damage transferred to attacker
	StrengthFactor float64 `yaml:"strength_factor"` // damage scales by (1 + strength*this)

	ReproduceOverhead float64 `yaml:"reproduce_overhead"` // fraction of max energy paid on birth
	ChildEnergy       float64 `yaml:"child_energy"`       // starting energy handed to the child
	MinEnergyBuffer   float64 `yaml:"min_energy_buffer"`  // must remain after paying for a birth
	MaturityAge       int     `yaml:"maturity_age"`       // minimum age to reproduce

	SuicideAge int `yaml:"suicide_age"` // minimum age for self-termination to take effect

	MoveCooldown      int `yaml:"move_cooldown"`
	FleeCooldown      int `yaml:"flee_cooldown"`
	EatCooldown       int `yaml:"eat_cooldown"`
	AttackCooldown    int `yaml:"attack_cooldown"`
	ReproduceCooldown int `yaml:"reproduce_cooldown"`
}

// InstinctConfig holds the hard-wired bias layer applied over action activations.
// All biases are additive and should stay below neural.activation_threshold so
// instincts steer a responsive network rather than force a silent one.
type InstinctConfig struct {
	FeedingThreshold      float64 `yaml:"feeding_threshold"`      // energy ratio below which feeding is urged
	ReproductionThreshold float64 `yaml:"reproduction_threshold"` // energy ratio above which breeding is urged
	HuntingThreshold      float64 `yaml:"hunting_threshold"`      // energy ratio below which hunters seek prey
	FleeBias              float64 `yaml:"flee_bias"`
	FeedBias              float64 `yaml:"feed_bias"`
	AttackBias            float64 `yaml:"attack_bias"`
	ReproduceBias         float64 `yaml:"reproduce_bias"`
}

// PlantsConfig holds flora growth parameters.
type PlantsConfig struct {
	MaxEnergy          float64 `yaml:"max_energy"`
	InitialEnergy      float64 `yaml:"initial_energy"`
	PhotosynthesisRate float64 `yaml:"photosynthesis_rate"` // energy gained per tick
	MaturityAge        int     `yaml:"maturity_age"`
	ReproduceThreshold float64 `yaml:"reproduce_threshold"` // minimum energy to seed
	ReproduceChance    float64 `yaml:"reproduce_chance"`    // per eligible tick
}

// SpawnConfig holds startup placement parameters.
type SpawnConfig struct {
	Agents        int     `yaml:"agents"`
	Plants        int     `yaml:"plants"`
	Structures    int     `yaml:"structures"`
	ClusterChance float64 `yaml:"cluster_chance"` // chance to attach next to an existing same-kind entity
}

// TelemetryConfig holds logging parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate rejects out-of-range configuration at construction time so that
// malformed values never surface as per-tick failures.
func (c *Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height)
	case c.World.AgentPool <= 0 || c.World.PlantPool <= 0 || c.World.StructurePool <= 0:
		return fmt.Errorf("config: pool sizes must be positive")
	case c.Genome.Length <= 0:
		return fmt.Errorf("config: genome length must be positive, got %d", c.Genome.Length)
	case c.Genome.TraitGenes < 0 || c.Genome.TraitGenes > c.Genome.Length:
		return fmt.Errorf("config: trait genes %d out of range for genome length %d", c.Genome.TraitGenes, c.Genome.Length)
	case c.Genome.MutationRate < 0 || c.Genome.MutationRate > 1:
		return fmt.Errorf("config: mutation rate must be in [0,1], got %g", c.Genome.MutationRate)
	case c.Genome.TraitNormalization <= 0:
		return fmt.Errorf("config: trait normalization must be positive")
	case c.Genome.CarnivoreThreshold > c.Genome.HerbivoreThreshold:
		return fmt.Errorf("config: carnivore threshold %g above herbivore threshold %g",
			c.Genome.CarnivoreThreshold, c.Genome.HerbivoreThreshold)
	case c.Neural.Neurons <= 0:
		return fmt.Errorf("config: neuron count must be positive, got %d", c.Neural.Neurons)
	case c.Neural.DecayFactor < 0 || c.Neural.DecayFactor > 1:
		return fmt.Errorf("config: decay factor must be in [0,1], got %g", c.Neural.DecayFactor)
	case c.Neural.OscillatorPeriod <= 0:
		return fmt.Errorf("config: oscillator period must be positive")
	case c.Neural.AgeScale <= 0:
		return fmt.Errorf("config: age scale must be positive")
	case c.Perception.LocalRadius < 0 || c.Perception.DirectionalRadius < 0:
		return fmt.Errorf("config: perception radii must be non-negative")
	case c.Energy.MaxEnergy <= 0:
		return fmt.Errorf("config: max energy must be positive")
	case c.Energy.InitialEnergy < 0 || c.Energy.InitialEnergy > c.Energy.MaxEnergy:
		return fmt.Errorf("config: initial energy %g out of range [0,%g]", c.Energy.InitialEnergy, c.Energy.MaxEnergy)
	case c.Energy.BaseMetabolism < 0:
		return fmt.Errorf("config: base metabolism must be non-negative")
	case c.Plants.ReproduceChance < 0 || c.Plants.ReproduceChance > 1:
		return fmt.Errorf("config: plant reproduce chance must be in [0,1]")
	case c.Spawn.ClusterChance < 0 || c.Spawn.ClusterChance > 1:
		return fmt.Errorf("config: cluster chance must be in [0,1]")
	case c.Spawn.Agents > c.World.AgentPool:
		return fmt.Errorf("config: spawn agents %d exceeds agent pool %d", c.Spawn.Agents, c.World.AgentPool)
	case c.Spawn.Plants > c.World.PlantPool:
		return fmt.Errorf("config: spawn plants %d exceeds plant pool %d", c.Spawn.Plants, c.World.PlantPool)
	case c.Spawn.Structures > c.World.StructurePool:
		return fmt.Errorf("config: spawn structures %d exceeds structure pool %d", c.Spawn.Structures, c.World.StructurePool)
	case c.Telemetry.StatsWindow <= 0:
		return fmt.Errorf("config: stats window must be positive")
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
