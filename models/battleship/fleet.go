package battleship

type ShipSpec struct {
	Name   string
	Length int
}

// Ships are placed in this order, smallest first.
var DefaultFleet = []ShipSpec{
	{Name: "Destroyer", Length: 2},
	{Name: "Destroyer 2", Length: 2},
	{Name: "Submarine", Length: 3},
	{Name: "Submarine 2", Length: 3},
	{Name: "Battleship", Length: 4},
	{Name: "Carrier", Length: 5},
}

func NewFleet(specs []ShipSpec) []*Ship {
	ships := make([]*Ship, 0, len(specs))
	for _, spec := range specs {
		ships = append(ships, NewShip(spec.Name, spec.Length))
	}
	return ships
}
