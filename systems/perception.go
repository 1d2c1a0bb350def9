// Package systems holds the pure per-tick computations: spatial perception
// scans, the instinct bias layer, and energy arithmetic. Everything here is
// side-effect free; world mutation stays in the scheduler.
package systems

import (
	"math"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
)

// NumSectors is the number of compass sectors for directional scans.
const NumSectors = 8

// Density holds fraction-of-cells-occupied per entity kind.
type Density struct {
	Agents     float64
	Plants     float64
	Structures float64
}

// DirectionalDensity holds per-sector occupancy densities per entity kind.
// Sector 0 is north, proceeding clockwise (N, NE, E, SE, S, SW, W, NW).
type DirectionalDensity struct {
	Agents     [NumSectors]float64
	Plants     [NumSectors]float64
	Structures [NumSectors]float64
}

// ScanResult is the output of the combined single-pass scan.
type ScanResult struct {
	Local       Density
	Directional DirectionalDensity
	Threat      bool
}

// SectorTable caches the compass sector of every (dx, dy) offset within a
// radius, so the hot scan never touches trigonometry. Built once at world
// construction.
type SectorTable struct {
	radius  int
	side    int
	sectors []int8 // -1 for the center offset
}

// NewSectorTable precomputes sector membership for all offsets in the
// (2r+1)^2 square.
func NewSectorTable(radius int) *SectorTable {
	side := 2*radius + 1
	t := &SectorTable{
		radius:  radius,
		side:    side,
		sectors: make([]int8, side*side),
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			i := (dy+radius)*side + (dx + radius)
			if dx == 0 && dy == 0 {
				t.sectors[i] = -1
				continue
			}
			t.sectors[i] = int8(sectorOf(dx, dy))
		}
	}
	return t
}

// Sector returns the cached sector for an offset within the table's radius.
func (t *SectorTable) Sector(dx, dy int) int {
	return int(t.sectors[(dy+t.radius)*t.side+(dx+t.radius)])
}

// Radius returns the radius the table was built for.
func (t *SectorTable) Radius() int { return t.radius }

// sectorOf buckets an offset by angle, rotated so 0 points north (negative
// dy) and wrapped into [0, 2pi); each sector is centered on its compass
// direction.
func sectorOf(dx, dy int) int {
	ang := math.Atan2(float64(dx), float64(-dy))
	if ang < 0 {
		ang += 2 * math.Pi
	}
	return int((ang+math.Pi/8)/(math.Pi/4)) % NumSectors
}

// ScanLocalArea iterates the (2r+1)^2 square centered on (x, y), excluding
// the center and wrapping toroidally, and returns the fraction of cells
// occupied per kind. Radius 0 yields all zeros.
func ScanLocalArea(g *components.Grid, x, y, radius int) Density {
	if radius <= 0 {
		return Density{}
	}

	var agents, plants, structures int
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			switch g.At(x+dx, y+dy).Kind {
			case components.KindAgent:
				agents++
			case components.KindPlant:
				plants++
			case components.KindStructure:
				structures++
			}
		}
	}

	cells := float64((2*radius+1)*(2*radius+1) - 1)
	return Density{
		Agents:     float64(agents) / cells,
		Plants:     float64(plants) / cells,
		Structures: float64(structures) / cells,
	}
}

// ScanDirectional partitions the same square into 8 compass sectors and
// returns each sector's occupied-count over cells-checked, per kind. Sectors
// that saw no cells stay zero.
func ScanDirectional(g *components.Grid, x, y, radius int, tbl *SectorTable) DirectionalDensity {
	var d DirectionalDensity
	if radius <= 0 {
		return d
	}

	var checked [NumSectors]int
	var agents, plants, structures [NumSectors]int

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			s := tbl.Sector(dx, dy)
			checked[s]++
			switch g.At(x+dx, y+dy).Kind {
			case components.KindAgent:
				agents[s]++
			case components.KindPlant:
				plants[s]++
			case components.KindStructure:
				structures[s]++
			}
		}
	}

	for s := 0; s < NumSectors; s++ {
		if checked[s] == 0 {
			continue
		}
		n := float64(checked[s])
		d.Agents[s] = float64(agents[s]) / n
		d.Plants[s] = float64(plants[s]) / n
		d.Structures[s] = float64(structures[s]) / n
	}
	return d
}

// ScanCombined performs the local and directional scans plus threat detection
// in a single grid traversal over the larger of the two radii. The sector
// table must cover dirRadius. A threat is any live agent within the local
// radius for which Threatening(other, self) holds.
func ScanCombined(g *components.Grid, agents []components.Agent, self *components.Agent,
	localRadius, dirRadius int, tbl *SectorTable) ScanResult {

	var res ScanResult
	radius := localRadius
	if dirRadius > radius {
		radius = dirRadius
	}
	if radius <= 0 {
		return res
	}

	var localAgents, localPlants, localStructures int
	var checked, dirAgents, dirPlants, dirStructures [NumSectors]int

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			inLocal := dx >= -localRadius && dx <= localRadius && dy >= -localRadius && dy <= localRadius && localRadius > 0
			inDir := dx >= -dirRadius && dx <= dirRadius && dy >= -dirRadius && dy <= dirRadius && dirRadius > 0
			if !inLocal && !inDir {
				continue
			}

			cell := g.At(self.X+dx, self.Y+dy)

			var s int
			if inDir {
				s = tbl.Sector(dx, dy)
				checked[s]++
			}

			switch cell.Kind {
			case components.KindAgent:
				if inLocal {
					localAgents++
					other := &agents[cell.Index]
					if other.Alive && Threatening(other, self) {
						res.Threat = true
					}
				}
				if inDir {
					dirAgents[s]++
				}
			case components.KindPlant:
				if inLocal {
					localPlants++
				}
				if inDir {
					dirPlants[s]++
				}
			case components.KindStructure:
				if inLocal {
					localStructures++
				}
				if inDir {
					dirStructures[s]++
				}
			}
		}
	}

	if localRadius > 0 {
		cells := float64((2*localRadius+1)*(2*localRadius+1) - 1)
		res.Local = Density{
			Agents:     float64(localAgents) / cells,
			Plants:     float64(localPlants) / cells,
			Structures: float64(localStructures) / cells,
		}
	}

	for s := 0; s < NumSectors; s++ {
		if checked[s] == 0 {
			continue
		}
		n := float64(checked[s])
		res.Directional.Agents[s] = float64(dirAgents[s]) / n
		res.Directional.Plants[s] = float64(dirPlants[s]) / n
		res.Directional.Structures[s] = float64(dirStructures[s]) / n
	}
	return res
}

// Threatening reports whether other is a danger to self: a live carnivore or
// omnivore with a higher Strength trait than the scanner.
func Threatening(other, self *components.Agent) bool {
	if other.Diet == genome.DietHerbivore {
		return false
	}
	return other.Traits.Strength > self.Traits.Strength
}
