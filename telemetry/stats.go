package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Kromtec/Vivarium-sub001/sim"
)

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowStart int64 `csv:"-"`
	WindowEnd   int64 `csv:"window_end"`

	// Population counts at window end
	Carnivores int `csv:"carnivores"`
	Omnivores  int `csv:"omnivores"`
	Herbivores int `csv:"herbivores"`
	Plants     int `csv:"plants"`
	Structures int `csv:"structures"`

	// Events during window
	CarnivoreBirths int `csv:"carnivore_births"`
	OmnivoreBirths  int `csv:"omnivore_births"`
	HerbivoreBirths int `csv:"herbivore_births"`
	CarnivoreDeaths int `csv:"carnivore_deaths"`
	OmnivoreDeaths  int `csv:"omnivore_deaths"`
	HerbivoreDeaths int `csv:"herbivore_deaths"`
	Kills           int `csv:"kills"`

	// Distributions sampled at window end
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	AgeMean float64 `csv:"age_mean"`
	AgeP50  float64 `csv:"age_p50"`
	AgeP90  float64 `csv:"age_p90"`

	MaxGeneration int `csv:"max_generation"`
}

// Distribution summarizes a sample: mean, standard deviation, and the 10th,
// 50th, and 90th percentiles. Empty samples yield zeros.
type Distribution struct {
	Mean, Std, P10, P50, P90 float64
}

// ComputeDistribution calculates summary statistics for a sample.
func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	return d
}

// BuildWindowStats assembles a window record from collector events, the
// current counts, and a population snapshot.
func BuildWindowStats(c *Collector, tick int64, counts sim.Counts, snap *sim.Snapshot) WindowStats {
	var stats WindowStats
	c.Flush(tick, &stats)

	stats.Carnivores = counts.Carnivores
	stats.Omnivores = counts.Omnivores
	stats.Herbivores = counts.Herbivores
	stats.Plants = counts.Plants
	stats.Structures = counts.Structures

	energies := make([]float64, 0, len(snap.Agents))
	ages := make([]float64, 0, len(snap.Agents))
	for i := range snap.Agents {
		a := &snap.Agents[i]
		energies = append(energies, a.Energy)
		ages = append(ages, float64(a.Age))
		if a.Generation > stats.MaxGeneration {
			stats.MaxGeneration = a.Generation
		}
	}

	e := ComputeDistribution(energies)
	stats.EnergyMean = e.Mean
	stats.EnergyStd = e.Std
	stats.EnergyP10 = e.P10
	stats.EnergyP50 = e.P50
	stats.EnergyP90 = e.P90

	ag := ComputeDistribution(ages)
	stats.AgeMean = ag.Mean
	stats.AgeP50 = ag.P50
	stats.AgeP90 = ag.P90

	return stats
}
