package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Kromtec/Vivarium-sub001/components"
	"github.com/Kromtec/Vivarium-sub001/genome"
)

func TestSectorTable(t *testing.T) {
	tbl := NewSectorTable(3)

	tests := []struct {
		dx, dy int
		want   int
	}{
		{0, -1, 0}, // N
		{0, -3, 0},
		{1, -1, 1}, // NE
		{2, -2, 1},
		{1, 0, 2}, // E
		{3, 0, 2},
		{1, 1, 3}, // SE
		{0, 1, 4}, // S
		{-1, 1, 5}, // SW
		{-1, 0, 6}, // W
		{-1, -1, 7}, // NW
		{2, -1, 1}, // steep NE
	}
	for _, tt := range tests {
		if got := tbl.Sector(tt.dx, tt.dy); got != tt.want {
			t.Errorf("Sector(%d, %d) = %d, want %d", tt.dx, tt.dy, got, tt.want)
		}
	}

	if tbl.Sector(0, 0) != -1 {
		t.Error("center offset should have no sector")
	}
}

func TestScanLocalAreaEmptyGrid(t *testing.T) {
	g := components.NewGrid(16, 16)
	for _, r := range []int{0, 1, 2, 4} {
		d := ScanLocalArea(g, 8, 8, r)
		if d != (Density{}) {
			t.Errorf("radius %d on empty grid: %+v, want zeros", r, d)
		}
	}
}

func TestScanLocalAreaCounts(t *testing.T) {
	g := components.NewGrid(16, 16)
	g.Set(7, 7, components.GridCell{Kind: components.KindAgent, Index: 0})
	g.Set(9, 8, components.GridCell{Kind: components.KindAgent, Index: 1})
	g.Set(8, 9, components.GridCell{Kind: components.KindPlant, Index: 0})
	g.Set(8, 8, components.GridCell{Kind: components.KindStructure, Index: 0}) // center: excluded

	d := ScanLocalArea(g, 8, 8, 1)
	if math.Abs(d.Agents-2.0/8.0) > 1e-12 {
		t.Errorf("agent fraction = %v, want 0.25", d.Agents)
	}
	if math.Abs(d.Plants-1.0/8.0) > 1e-12 {
		t.Errorf("plant fraction = %v, want 0.125", d.Plants)
	}
	if d.Structures != 0 {
		t.Errorf("structure fraction = %v, want 0 (center excluded)", d.Structures)
	}
}

func TestScanWrapsToroidally(t *testing.T) {
	g := components.NewGrid(10, 10)
	g.Set(9, 9, components.GridCell{Kind: components.KindPlant, Index: 0})

	d := ScanLocalArea(g, 0, 0, 1)
	if math.Abs(d.Plants-1.0/8.0) > 1e-12 {
		t.Errorf("plant across the seam not seen: %+v", d)
	}
}

// Sector densities weighted by cells-checked must sum to the same occupied
// totals as a full-square scan over the same radius.
func TestDirectionalMatchesLocalTotals(t *testing.T) {
	const radius = 3
	g := components.NewGrid(32, 32)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		x, y := rng.Intn(32), rng.Intn(32)
		kind := components.EntityKind(1 + rng.Intn(3))
		g.Set(x, y, components.GridCell{Kind: kind})
	}
	g.Clear(16, 16)

	tbl := NewSectorTable(radius)
	dir := ScanDirectional(g, 16, 16, radius, tbl)
	local := ScanLocalArea(g, 16, 16, radius)

	var checked [NumSectors]float64
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			checked[tbl.Sector(dx, dy)]++
		}
	}

	cells := float64((2*radius+1)*(2*radius+1) - 1)
	var agents, plants, structures float64
	for s := 0; s < NumSectors; s++ {
		agents += dir.Agents[s] * checked[s]
		plants += dir.Plants[s] * checked[s]
		structures += dir.Structures[s] * checked[s]
	}

	if math.Abs(agents-local.Agents*cells) > 1e-9 {
		t.Errorf("agent totals differ: sectors %v, square %v", agents, local.Agents*cells)
	}
	if math.Abs(plants-local.Plants*cells) > 1e-9 {
		t.Errorf("plant totals differ: sectors %v, square %v", plants, local.Plants*cells)
	}
	if math.Abs(structures-local.Structures*cells) > 1e-9 {
		t.Errorf("structure totals differ: sectors %v, square %v", structures, local.Structures*cells)
	}
}

func TestScanCombinedThreat(t *testing.T) {
	g := components.NewGrid(16, 16)
	agents := []components.Agent{
		{X: 8, Y: 8, Alive: true, Diet: genome.DietOmnivore},                 // scanner
		{X: 9, Y: 8, Alive: true, Diet: genome.DietCarnivore},                // stronger predator
		{X: 7, Y: 8, Alive: true, Diet: genome.DietHerbivore},                // harmless grazer
	}
	agents[0].Traits.Strength = 0.1
	agents[1].Traits.Strength = 0.5
	agents[2].Traits.Strength = 0.9

	for i := range agents {
		g.Set(agents[i].X, agents[i].Y, components.GridCell{Kind: components.KindAgent, Index: int32(i)})
	}

	tbl := NewSectorTable(4)
	res := ScanCombined(g, agents, &agents[0], 2, 4, tbl)
	if !res.Threat {
		t.Error("stronger adjacent carnivore not flagged as threat")
	}
	if res.Local.Agents == 0 {
		t.Error("local scan missed neighbors")
	}

	// Remove the predator; a strong herbivore alone is no threat.
	g.Clear(9, 8)
	res = ScanCombined(g, agents, &agents[0], 2, 4, tbl)
	if res.Threat {
		t.Error("herbivore flagged as threat")
	}
}

func TestThreatening(t *testing.T) {
	self := &components.Agent{Diet: genome.DietHerbivore}
	self.Traits.Strength = 0.2

	carn := &components.Agent{Diet: genome.DietCarnivore, Alive: true}
	carn.Traits.Strength = 0.5
	if !Threatening(carn, self) {
		t.Error("stronger carnivore should threaten")
	}

	weak := &components.Agent{Diet: genome.DietCarnivore, Alive: true}
	weak.Traits.Strength = 0.1
	if Threatening(weak, self) {
		t.Error("weaker carnivore should not threaten")
	}
}
