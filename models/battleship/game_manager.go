package battleship

import (
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

type GameManager interface {
	CreateGame() (*Game, error)
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	ResetForNewGame(gameUuid string) (*Game, error)
}

// BattleshipGameManager owns the games of one console session.
// Only the session goroutine touches it.
type BattleshipGameManager struct {
	games     map[string]*Game
	boardOpts []BoardOption
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(boardOpts ...BoardOption) *BattleshipGameManager {
	return &BattleshipGameManager{
		games:     make(map[string]*Game, 1),
		boardOpts: boardOpts,
	}
}

func (bgm *BattleshipGameManager) CreateGame() (*Game, error) {
	game, err := NewGame(bgm.boardOpts...)
	if err != nil {
		return nil, err
	}

	bgm.games[game.Uuid()] = game
	return game, nil
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	game, prs := bgm.games[gameUuid]
	if !prs {
		return nil, cerr.ErrGameNotExistsUuid(gameUuid)
	}
	if game == nil {
		return nil, cerr.ErrGameIsNilUuid(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	delete(bgm.games, gameUuid)
}

// ResetForNewGame discards the given game with its board and ships and
// builds a fresh one. Only the replay path calls it.
func (bgm *BattleshipGameManager) ResetForNewGame(gameUuid string) (*Game, error) {
	if _, err := bgm.FetchGame(gameUuid); err != nil {
		return nil, err
	}

	bgm.TerminateGame(gameUuid)
	return bgm.CreateGame()
}

func (bgm *BattleshipGameManager) ActiveGames() int {
	return len(bgm.games)
}
