package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

func newSingleShipGame(t *testing.T) *Game {
	t.Helper()
	board := newEmptyTestBoard(t)
	if err := board.PlaceShipAt(NewShip("Destroyer", 2), NewCoordinates(1, 1), OrientationVertical); err != nil {
		t.Fatal(err)
	}
	return NewGameFromBoard(board)
}

func TestGameTurns(t *testing.T) {
	game := newSingleShipGame(t)

	_, _ = game.Attack(NewCoordinates(0, 0))
	_, _ = game.Attack(NewCoordinates(0, 0))
	_, _ = game.Attack(NewCoordinates(GridSize, 0))
	if game.Turns() != 1 {
		t.Fatalf("expected rejected attacks not to count\tgot: %d turns", game.Turns())
	}

	_, _ = game.Attack(NewCoordinates(1, 1))
	_, _ = game.Attack(NewCoordinates(2, 1))
	if game.Turns() != 3 {
		t.Fatalf("expected turns: %d\tgot: %d", 3, game.Turns())
	}
	if !game.IsGameOver() {
		t.Fatal("expected game over after the last ship sank")
	}
}

func TestIsGameOverIsPure(t *testing.T) {
	game := newSingleShipGame(t)
	_, _ = game.Attack(NewCoordinates(1, 1))
	_, _ = game.Attack(NewCoordinates(2, 1))

	board := game.Board()
	for i := 0; i < 3; i++ {
		if !game.IsGameOver() {
			t.Fatalf("call %d: expected game over", i)
		}
	}
	if game.Board() != board || len(board.Ships()) != 1 || board.HitCount() != 2 {
		t.Fatal("expected the board to be untouched by the win check")
	}
}

func TestGameManager(t *testing.T) {
	bgm := NewBattleshipGameManager()

	game, err := bgm.CreateGame()
	if err != nil {
		t.Fatal(err)
	}
	if len(game.Board().Ships()) != len(DefaultFleet) {
		t.Fatalf("expected ships: %d\tgot: %d", len(DefaultFleet), len(game.Board().Ships()))
	}

	fetched, err := bgm.FetchGame(game.Uuid())
	if err != nil || fetched != game {
		t.Fatalf("expected to fetch game %s\tgot: %v", game.Uuid(), err)
	}

	next, err := bgm.ResetForNewGame(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if next == game || next.Uuid() == game.Uuid() {
		t.Fatal("expected a fresh game after reset")
	}
	if next.Turns() != 0 || next.Board().HitCount() != 0 || next.Board().RevealMode() {
		t.Fatal("expected a clean board after reset")
	}
	if bgm.ActiveGames() != 1 {
		t.Fatalf("expected active games: %d\tgot: %d", 1, bgm.ActiveGames())
	}

	if _, err := bgm.FetchGame(game.Uuid()); !errors.Is(err, cerr.ErrGameNotExists) {
		t.Fatalf("expected err: %v\tgot: %v", cerr.ErrGameNotExists, err)
	}
	if _, err := bgm.ResetForNewGame(game.Uuid()); !errors.Is(err, cerr.ErrGameNotExists) {
		t.Fatalf("expected err: %v\tgot: %v", cerr.ErrGameNotExists, err)
	}

	bgm.TerminateGame(next.Uuid())
	if bgm.ActiveGames() != 0 {
		t.Fatalf("expected active games: %d\tgot: %d", 0, bgm.ActiveGames())
	}
}
