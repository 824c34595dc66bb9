package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAttackFailed = "attack operation failed"
	ConstErrInvalidInput = "invalid input"
)

var (
	ErrMalformedCoordinate = errors.New("coordinate must be a letter followed by a number, e.g. A1")
	ErrOutOfGridBound      = errors.New("coordinate is out of game grid bound")
	ErrPositionAlreadyHit  = errors.New("this position is already attacked in previous rounds")
	ErrUnplaceableFleet    = errors.New("fleet could not be placed on the grid")
	ErrPositionOccupied    = errors.New("position is already occupied by another ship")
	ErrShipAlreadyPlaced   = errors.New("ship is already placed on the grid")
	ErrGameNotExists       = errors.New("game does not exist")
	ErrGameIsNil           = errors.New("game is nil")
	ErrInvalidReplayAnswer = errors.New("replay answer must be an integer")
	ErrInvalidStage        = errors.New("stage must be either dev or prod")
	ErrInvalidOrientation  = errors.New("orientation mode must be either skewed or fair")
)

func ErrMalformedCoordinateInput(raw string) error {
	return fmt.Errorf("%w\tinput: %q", ErrMalformedCoordinate, raw)
}

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfGridBound, row, col)
}

func ErrDefenceGridPositionAlreadyHit(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrPositionAlreadyHit, row, col)
}

func ErrShipOverlap(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrPositionOccupied, row, col)
}

func ErrShipPlacedTwice(name string) error {
	return fmt.Errorf("%w\tship: %s", ErrShipAlreadyPlaced, name)
}

func ErrShipUnplaceable(name string, length, attempts int) error {
	return fmt.Errorf("%w\tship: %s\tlength: %d\tattempts: %d", ErrUnplaceableFleet, name, length, attempts)
}

func ErrGameNotExistsUuid(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrGameIsNilUuid(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameIsNil, gameUuid)
}

func ErrReplayAnswer(raw string) error {
	return fmt.Errorf("%w\tinput: %q", ErrInvalidReplayAnswer, raw)
}

func ErrStage(stage string) error {
	return fmt.Errorf("%w\tgot: %s", ErrInvalidStage, stage)
}

func ErrOrientationMode(mode string) error {
	return fmt.Errorf("%w\tgot: %s", ErrInvalidOrientation, mode)
}
