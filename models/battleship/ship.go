package battleship

type Orientation uint8

const (
	OrientationUnset Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unset"
	}
}

// step returns the row and col deltas of one cell along the orientation.
func (o Orientation) step() (int, int) {
	if o == OrientationVertical {
		return 1, 0
	}
	return 0, 1
}

type Ship struct {
	name          string
	length        int
	health        int
	orientation   Orientation
	origin        Coordinates
	placed        bool
	sunkAnnounced bool
}

func NewShip(name string, length int) *Ship {
	return &Ship{
		name:   name,
		length: length,
		health: length,
	}
}

func (sh *Ship) Name() string {
	return sh.name
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Health() int {
	return sh.health
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Origin() Coordinates {
	return sh.origin
}

func (sh *Ship) IsPlaced() bool {
	return sh.placed
}

// place fixes the ship on the grid. A placed ship never moves.
func (sh *Ship) place(origin Coordinates, orientation Orientation) {
	if sh.placed {
		return
	}
	sh.origin = origin
	sh.orientation = orientation
	sh.placed = true
}

func (sh *Ship) GotHit() {
	if sh.health > 0 {
		sh.health--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}

// announceSunk reports true only the first time it is called on a sunk ship.
func (sh *Ship) announceSunk() bool {
	if !sh.IsSunk() || sh.sunkAnnounced {
		return false
	}
	sh.sunkAnnounced = true
	return true
}

// cellsFrom lists the positions a ship of length would cover from origin.
func cellsFrom(origin Coordinates, orientation Orientation, length int) []Coordinates {
	dr, dc := orientation.step()
	cells := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		cells = append(cells, NewCoordinates(origin.Row+i*dr, origin.Col+i*dc))
	}
	return cells
}

func (sh *Ship) Cells() []Coordinates {
	if !sh.placed {
		return nil
	}
	return cellsFrom(sh.origin, sh.orientation, sh.length)
}

// Occupies is derived from the stored placement only, never from grid state.
func (sh *Ship) Occupies(c Coordinates) bool {
	if !sh.placed {
		return false
	}
	switch sh.orientation {
	case OrientationVertical:
		return c.Col == sh.origin.Col && c.Row >= sh.origin.Row && c.Row < sh.origin.Row+sh.length
	default:
		return c.Row == sh.origin.Row && c.Col >= sh.origin.Col && c.Col < sh.origin.Col+sh.length
	}
}
