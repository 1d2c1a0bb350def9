// Package components defines the plain data types shared across the
// simulation: grid cells, agents, plants, and structures.
package components

// EntityKind tags what occupies a grid cell.
type EntityKind uint8

const (
	KindEmpty EntityKind = iota
	KindAgent
	KindPlant
	KindStructure
)

func (k EntityKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindAgent:
		return "agent"
	case KindPlant:
		return "plant"
	case KindStructure:
		return "structure"
	}
	return "unknown"
}

// GridCell points at the population slot of whatever occupies the cell.
type GridCell struct {
	Kind  EntityKind
	Index int32
}

// Grid is the toroidal world grid. Cells and the population arenas are kept
// mutually consistent by the scheduler: every non-empty cell indexes a live
// entity of the declared kind, and every live placed entity owns exactly one
// cell.
type Grid struct {
	Width  int
	Height int
	Cells  []GridCell
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]GridCell, width*height),
	}
}

// Wrap maps arbitrary coordinates onto the torus.
func (g *Grid) Wrap(x, y int) (int, int) {
	x %= g.Width
	if x < 0 {
		x += g.Width
	}
	y %= g.Height
	if y < 0 {
		y += g.Height
	}
	return x, y
}

// At returns the cell at (x, y); coordinates wrap.
func (g *Grid) At(x, y int) GridCell {
	x, y = g.Wrap(x, y)
	return g.Cells[y*g.Width+x]
}

// Set writes the cell at (x, y); coordinates wrap.
func (g *Grid) Set(x, y int, c GridCell) {
	x, y = g.Wrap(x, y)
	g.Cells[y*g.Width+x] = c
}

// Clear empties the cell at (x, y).
func (g *Grid) Clear(x, y int) {
	g.Set(x, y, GridCell{})
}
