package battleship

import (
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

// The board is fixed at 10x10.
const GridSize int = 10

const (
	PositionStateEmpty uint8 = iota
	PositionStateShip
	PositionStateHit
	PositionStateMiss
)

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Grid is a row-major square of position states.
// Every access goes through InBounds so callers never index raw.
type Grid struct {
	size  int
	cells []uint8
}

// Creates a new default grid
// All positions are PositionStateEmpty
func NewGrid(gridSize int) Grid {
	return Grid{
		size:  gridSize,
		cells: make([]uint8, gridSize*gridSize),
	}
}

func (g Grid) Size() int {
	return g.size
}

func (g Grid) InBounds(c Coordinates) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g Grid) index(c Coordinates) int {
	return c.Row*g.size + c.Col
}

func (g Grid) State(c Coordinates) (uint8, error) {
	if !g.InBounds(c) {
		return 0, cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}
	return g.cells[g.index(c)], nil
}

func (g Grid) SetState(c Coordinates, state uint8) error {
	if !g.InBounds(c) {
		return cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}
	g.cells[g.index(c)] = state
	return nil
}

// CountState returns how many positions currently hold state.
func (g Grid) CountState(state uint8) int {
	n := 0
	for _, s := range g.cells {
		if s == state {
			n++
		}
	}
	return n
}
