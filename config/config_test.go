package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsValid(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		t.Errorf("defaults have no world dimensions: %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Genome.Length == 0 || cfg.Neural.Neurons == 0 {
		t.Error("defaults missing genome/neural sizing")
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("world:\n  width: 48\n  height: 48\ngenome:\n  mutation_rate: 0.05\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Width != 48 || cfg.World.Height != 48 {
		t.Errorf("override not applied: %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Genome.MutationRate != 0.05 {
		t.Errorf("mutation rate = %v, want 0.05", cfg.Genome.MutationRate)
	}
	// Fields absent from the file keep their defaults.
	defaults := MustLoad("")
	if cfg.Energy.MaxEnergy != defaults.Energy.MaxEnergy {
		t.Errorf("untouched field lost its default: %v", cfg.Energy.MaxEnergy)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.World.Width = 0 }},
		{"negative height", func(c *Config) { c.World.Height = -1 }},
		{"zero agent pool", func(c *Config) { c.World.AgentPool = 0 }},
		{"zero genome length", func(c *Config) { c.Genome.Length = 0 }},
		{"trait genes exceed genome", func(c *Config) { c.Genome.TraitGenes = c.Genome.Length + 1 }},
		{"mutation rate above one", func(c *Config) { c.Genome.MutationRate = 1.5 }},
		{"negative mutation rate", func(c *Config) { c.Genome.MutationRate = -0.1 }},
		{"zero trait normalization", func(c *Config) { c.Genome.TraitNormalization = 0 }},
		{"inverted diet thresholds", func(c *Config) {
			c.Genome.CarnivoreThreshold = 0.5
			c.Genome.HerbivoreThreshold = -0.5
		}},
		{"zero neurons", func(c *Config) { c.Neural.Neurons = 0 }},
		{"decay above one", func(c *Config) { c.Neural.DecayFactor = 1.1 }},
		{"zero oscillator period", func(c *Config) { c.Neural.OscillatorPeriod = 0 }},
		{"negative local radius", func(c *Config) { c.Perception.LocalRadius = -1 }},
		{"zero max energy", func(c *Config) { c.Energy.MaxEnergy = 0 }},
		{"initial energy above max", func(c *Config) { c.Energy.InitialEnergy = c.Energy.MaxEnergy + 1 }},
		{"negative metabolism", func(c *Config) { c.Energy.BaseMetabolism = -0.1 }},
		{"plant chance above one", func(c *Config) { c.Plants.ReproduceChance = 2 }},
		{"spawn exceeds agent pool", func(c *Config) { c.Spawn.Agents = c.World.AgentPool + 1 }},
		{"spawn exceeds plant pool", func(c *Config) { c.Spawn.Plants = c.World.PlantPool + 1 }},
		{"zero stats window", func(c *Config) { c.Telemetry.StatsWindow = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MustLoad("")
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := MustLoad("")
	cfg.World.Seed = 999
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.World.Seed != 999 {
		t.Errorf("seed after round trip = %d, want 999", back.World.Seed)
	}
	if back.Energy.BaseMetabolism != cfg.Energy.BaseMetabolism {
		t.Errorf("metabolism after round trip = %v", back.Energy.BaseMetabolism)
	}
}
