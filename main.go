package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/Kromtec/Vivarium-sub001/config"
	"github.com/Kromtec/Vivarium-sub001/sim"
	"github.com/Kromtec/Vivarium-sub001/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config seed, or time-based if that is 0 too)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV stats and snapshots")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	snapshotEvery := flag.Int64("snapshot-every", 0, "Write a population snapshot every N ticks (0 = disabled)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.World.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	windowTicks := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		windowTicks = *statsWindow
	}
	collector := telemetry.NewCollector(int64(windowTicks))

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	world, err := sim.NewWorld(cfg, sim.Options{Seed: rngSeed, Recorder: collector})
	if err != nil {
		slog.Error("failed to create world", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"world", [2]int{cfg.World.Width, cfg.World.Height},
		"agents", cfg.Spawn.Agents,
		"plants", cfg.Spawn.Plants,
		"max_ticks", *maxTicks,
	)

	for {
		world.Step()
		tick := world.Tick()

		if collector.ShouldFlush(tick) {
			counts := world.Counts()
			snap := world.Snapshot()
			stats := telemetry.BuildWindowStats(collector, tick, counts, &snap)

			if err := output.WriteStats(stats); err != nil {
				slog.Error("failed to write stats", "error", err)
			}
			slog.Info("window",
				"tick", tick,
				"carnivores", counts.Carnivores,
				"omnivores", counts.Omnivores,
				"herbivores", counts.Herbivores,
				"plants", counts.Plants,
				"energy_mean", stats.EnergyMean,
				"max_generation", stats.MaxGeneration,
			)

			if counts.Agents() == 0 {
				slog.Info("population extinct", "tick", tick)
				return
			}
		}

		if *snapshotEvery > 0 && tick%*snapshotEvery == 0 {
			snap := world.Snapshot()
			if path, err := output.WriteSnapshot(&snap); err != nil {
				slog.Error("failed to write snapshot", "error", err)
			} else if path != "" {
				slog.Info("snapshot written", "path", path, "tick", tick)
			}
		}

		if *maxTicks > 0 && tick >= *maxTicks {
			slog.Info("max ticks reached", "tick", tick)
			return
		}
	}
}
