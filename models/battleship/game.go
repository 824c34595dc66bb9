package battleship

import (
	"github.com/saeidalz13/battleship-console/internal"
)

// Game is a single round: one board, one fleet, and its turn count.
// A replay never reuses a Game; the manager builds a new one.
type Game struct {
	uuid  string
	board *Board
	turns int
}

func NewGame(opts ...BoardOption) (*Game, error) {
	board, err := NewBoard(opts...)
	if err != nil {
		return nil, err
	}

	return NewGameFromBoard(board), nil
}

// NewGameFromBoard wraps a board whose ships were placed by the caller.
func NewGameFromBoard(board *Board) *Game {
	return &Game{
		uuid:  internal.NewShortUuid(),
		board: board,
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Turns() int {
	return g.turns
}

// Attack counts a turn only when the board accepts the shot.
func (g *Game) Attack(c Coordinates) (AttackResult, error) {
	result, err := g.board.ApplyAttack(c)
	if err != nil {
		return AttackResult{}, err
	}
	g.turns++
	return result, nil
}

func (g *Game) ToggleReveal() bool {
	return g.board.ToggleReveal()
}

// IsGameOver has no side effects and may be called any number of times.
func (g *Game) IsGameOver() bool {
	return g.board.IsGameOver()
}
