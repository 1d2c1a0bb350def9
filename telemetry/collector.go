// Package telemetry is the logger collaborator: it accumulates lifecycle
// events, aggregates window statistics over population snapshots, and writes
// CSV/JSON output. It only ever consumes read-only simulation state.
package telemetry

import "github.com/Kromtec/Vivarium-sub001/genome"

// Collector accumulates lifecycle events within tick windows. It satisfies
// the scheduler's Recorder interface.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	births [3]int // indexed by diet
	deaths [3]int
	kills  int
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordBirth records a birth event.
func (c *Collector) RecordBirth(diet genome.Diet) {
	c.births[diet]++
}

// RecordDeath records a death event.
func (c *Collector) RecordDeath(diet genome.Diet) {
	c.deaths[diet]++
}

// RecordKill records a predation kill.
func (c *Collector) RecordKill() {
	c.kills++
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(tick int64) bool {
	return tick-c.windowStartTick >= c.windowTicks
}

// Flush folds the accumulated events into stats and resets the window.
func (c *Collector) Flush(tick int64, stats *WindowStats) {
	stats.WindowStart = c.windowStartTick
	stats.WindowEnd = tick

	stats.CarnivoreBirths = c.births[genome.DietCarnivore]
	stats.OmnivoreBirths = c.births[genome.DietOmnivore]
	stats.HerbivoreBirths = c.births[genome.DietHerbivore]
	stats.CarnivoreDeaths = c.deaths[genome.DietCarnivore]
	stats.OmnivoreDeaths = c.deaths[genome.DietOmnivore]
	stats.HerbivoreDeaths = c.deaths[genome.DietHerbivore]
	stats.Kills = c.kills

	c.births = [3]int{}
	c.deaths = [3]int{}
	c.kills = 0
	c.windowStartTick = tick
}
