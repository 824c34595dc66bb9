package battleship

import (
	"math/rand"
	"time"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

// Rejection-sampling attempts per ship before falling back to a
// deterministic scan of the grid.
const DefaultMaxPlacementAttempts int = 5000

type OrientationPicker func(r *rand.Rand) Orientation

// SkewedOrientation keeps the historical draw from [0, 10) where only
// 0 means vertical, so roughly 10% of ships stand vertically.
func SkewedOrientation(r *rand.Rand) Orientation {
	if r.Intn(10) == 0 {
		return OrientationVertical
	}
	return OrientationHorizontal
}

func FairOrientation(r *rand.Rand) Orientation {
	if r.Intn(2) == 0 {
		return OrientationVertical
	}
	return OrientationHorizontal
}

type AttackResult struct {
	Coordinates   Coordinates
	PositionState uint8
	Ship          *Ship
	Sunk          bool
}

func (ar AttackResult) IsHit() bool {
	return ar.PositionState == PositionStateHit
}

type Board struct {
	grid            Grid
	ships           []*Ship
	revealMode      bool
	rng             *rand.Rand
	pickOrientation OrientationPicker
	maxAttempts     int
}

type BoardOption func(*Board) error

func WithRand(r *rand.Rand) BoardOption {
	return func(b *Board) error {
		b.rng = r
		return nil
	}
}

func WithOrientationPicker(picker OrientationPicker) BoardOption {
	return func(b *Board) error {
		b.pickOrientation = picker
		return nil
	}
}

func WithMaxPlacementAttempts(attempts int) BoardOption {
	return func(b *Board) error {
		if attempts > 0 {
			b.maxAttempts = attempts
		}
		return nil
	}
}

// NewEmptyBoard returns a board with no ships on it.
func NewEmptyBoard(opts ...BoardOption) (*Board, error) {
	b := Board{
		grid:            NewGrid(GridSize),
		ships:           make([]*Ship, 0, len(DefaultFleet)),
		pickOrientation: SkewedOrientation,
		maxAttempts:     DefaultMaxPlacementAttempts,
	}
	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return nil, err
		}
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &b, nil
}

// NewBoard builds the grid and places every ship of the fleet at random.
func NewBoard(opts ...BoardOption) (*Board, error) {
	b, err := NewEmptyBoard(opts...)
	if err != nil {
		return nil, err
	}

	for _, ship := range NewFleet(DefaultFleet) {
		if err := b.PlaceShip(ship); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) validatePlacement(origin Coordinates, orientation Orientation, length int) error {
	for _, c := range cellsFrom(origin, orientation, length) {
		state, err := b.grid.State(c)
		if err != nil {
			return err
		}
		if state == PositionStateShip {
			return cerr.ErrShipOverlap(c.Row, c.Col)
		}
	}
	return nil
}

func (b *Board) canPlace(origin Coordinates, orientation Orientation, length int) bool {
	return b.validatePlacement(origin, orientation, length) == nil
}

// PlaceShipAt puts ship on the board if every cell it would cover is in
// bounds and free.
func (b *Board) PlaceShipAt(ship *Ship, origin Coordinates, orientation Orientation) error {
	if ship.IsPlaced() {
		return cerr.ErrShipPlacedTwice(ship.Name())
	}
	if err := b.validatePlacement(origin, orientation, ship.Length()); err != nil {
		return err
	}

	ship.place(origin, orientation)
	for _, c := range ship.Cells() {
		_ = b.grid.SetState(c, PositionStateShip)
	}
	b.ships = append(b.ships, ship)
	return nil
}

// PlaceShip draws random origins and orientations until one fits. After
// maxAttempts draws it scans the grid row by row and takes the first fit.
func (b *Board) PlaceShip(ship *Ship) error {
	for attempt := 0; attempt < b.maxAttempts; attempt++ {
		orientation := b.pickOrientation(b.rng)
		origin := NewCoordinates(b.rng.Intn(GridSize), b.rng.Intn(GridSize))
		if b.canPlace(origin, orientation, ship.Length()) {
			return b.PlaceShipAt(ship, origin, orientation)
		}
	}

	for _, orientation := range []Orientation{OrientationHorizontal, OrientationVertical} {
		for row := 0; row < GridSize; row++ {
			for col := 0; col < GridSize; col++ {
				origin := NewCoordinates(row, col)
				if b.canPlace(origin, orientation, ship.Length()) {
					return b.PlaceShipAt(ship, origin, orientation)
				}
			}
		}
	}
	return cerr.ErrShipUnplaceable(ship.Name(), ship.Length(), b.maxAttempts)
}

// FindShipAt returns nil when no ship covers c.
func (b *Board) FindShipAt(c Coordinates) *Ship {
	for _, ship := range b.ships {
		if ship.Occupies(c) {
			return ship
		}
	}
	return nil
}

func (b *Board) CellState(c Coordinates) (uint8, error) {
	return b.grid.State(c)
}

func (b *Board) IsAttacked(c Coordinates) (bool, error) {
	state, err := b.grid.State(c)
	if err != nil {
		return false, err
	}
	return state == PositionStateHit || state == PositionStateMiss, nil
}

// ApplyAttack resolves one shot. Out of bound and repeated positions are
// rejected before anything is mutated.
func (b *Board) ApplyAttack(c Coordinates) (AttackResult, error) {
	attacked, err := b.IsAttacked(c)
	if err != nil {
		return AttackResult{}, err
	}
	if attacked {
		return AttackResult{}, cerr.ErrDefenceGridPositionAlreadyHit(c.Row, c.Col)
	}

	result := AttackResult{Coordinates: c}
	ship := b.FindShipAt(c)
	if ship == nil {
		result.PositionState = PositionStateMiss
		_ = b.grid.SetState(c, PositionStateMiss)
		return result, nil
	}

	result.PositionState = PositionStateHit
	result.Ship = ship
	_ = b.grid.SetState(c, PositionStateHit)
	ship.GotHit()
	result.Sunk = ship.announceSunk()
	return result, nil
}

func (b *Board) IsGameOver() bool {
	return b.RemainingShips() == 0
}

func (b *Board) RemainingShips() int {
	return len(b.StandingShips())
}

func (b *Board) StandingShips() []*Ship {
	standing := make([]*Ship, 0, len(b.ships))
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			standing = append(standing, ship)
		}
	}
	return standing
}

func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) HitCount() int {
	return b.grid.CountState(PositionStateHit)
}

func (b *Board) Size() int {
	return b.grid.Size()
}

func (b *Board) RevealMode() bool {
	return b.revealMode
}

func (b *Board) ToggleReveal() bool {
	b.revealMode = !b.revealMode
	return b.revealMode
}
