package console

import (
	"errors"
	"fmt"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
	mc "github.com/saeidalz13/battleship-console/models/connection"
)

// Every line read during a round becomes a Request.
type Request struct {
	signal mc.Signal
}

func NewRequest(raw string, gridSize int) Request {
	return Request{signal: mc.ParseSignal(raw, gridSize)}
}

func (r Request) Code() uint8 {
	return r.signal.Code
}

// HandleAttack resolves the parsed coordinates against the game board.
// A rejected attack comes back with Error set and the board untouched.
func (r Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	if r.signal.Code != mc.CodeAttack {
		return invalidAttackMessage(cerr.ConstErrInvalidInput, r.signal.Err)
	}

	result, err := game.Attack(r.signal.Coordinates)
	if err != nil {
		return invalidAttackMessage(cerr.ConstErrAttackFailed, err)
	}

	board := game.Board()
	standing := board.StandingShips()
	payload := mc.RespAttack{
		Row:            result.Coordinates.Row,
		Col:            result.Coordinates.Col,
		PositionState:  result.PositionState,
		Sunk:           result.Sunk,
		RemainingShips: len(standing),
		IsGameOver:     game.IsGameOver(),
	}
	if result.Ship != nil {
		payload.ShipName = result.Ship.Name()
	}
	if result.Sunk {
		payload.StandingShips = make([]string, 0, len(standing))
		for _, ship := range standing {
			payload.StandingShips = append(payload.StandingShips, ship.Name())
		}
	}

	code := mc.CodeMiss
	switch {
	case result.Sunk:
		code = mc.CodeSunk
	case result.IsHit():
		code = mc.CodeHit
	}

	msg := mc.NewMessage[mc.RespAttack](code)
	msg.AddPayload(payload)
	return msg
}

func (r Request) HandleRevealToggle(game *mb.Game) mc.Message[mc.RespRevealToggle] {
	msg := mc.NewMessage[mc.RespRevealToggle](mc.CodeRevealToggle)
	msg.AddPayload(mc.RespRevealToggle{RevealMode: game.ToggleReveal()})
	return msg
}

// EndGameMessage summarizes a finished round. Turns go to the log only.
func EndGameMessage(game *mb.Game) mc.Message[mc.RespEndGame] {
	msg := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	msg.AddPayload(mc.RespEndGame{GameUuid: game.Uuid(), Turns: game.Turns()})
	return msg
}

func invalidAttackMessage(details string, err error) mc.Message[mc.RespAttack] {
	msg := mc.NewMessage[mc.RespAttack](mc.CodeInvalidSignal)
	if err != nil {
		details = fmt.Sprintf("%s: %v", details, err)
	}
	msg.AddError(details, userMessageFor(err))
	return msg
}

// userMessageFor picks the line shown to the player for a rejected input.
func userMessageFor(err error) string {
	switch {
	case errors.Is(err, cerr.ErrPositionAlreadyHit):
		return TextAlreadyAttacked
	case errors.Is(err, cerr.ErrOutOfGridBound):
		return TextOutOfBounds
	default:
		return TextMalformedCoordinate
	}
}
