package connection

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	CodeAttack uint8 = iota
	CodeRevealToggle
	CodeHit
	CodeMiss
	CodeSunk
	CodeEndGame
	CodeInvalidSignal

	// Between rounds
	CodeRematch
	CodeExit
)

// Typing it again turns reveal mode back off.
const RevealToggleToken = "EH"

// At most two digits follow the row letter.
const maxColumnDigits = 2

// Signal is one parsed line of console input.
type Signal struct {
	Code        uint8
	Raw         string
	Coordinates mb.Coordinates
	Err         error
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}

// ParseSignal reads a turn line: either the reveal toggle or a coordinate.
func ParseSignal(raw string, gridSize int) Signal {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if token == RevealToggleToken {
		return Signal{Code: CodeRevealToggle, Raw: raw}
	}

	c, err := ParseCoordinates(token, gridSize)
	if err != nil {
		return Signal{Code: CodeInvalidSignal, Raw: raw, Err: err}
	}
	return Signal{Code: CodeAttack, Raw: raw, Coordinates: c}
}

// ParseCoordinates maps "C10" to row 2, col 9. The letter is the row
// ('A' is 0) and the number is the 1-based column.
func ParseCoordinates(raw string, gridSize int) (mb.Coordinates, error) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if len(token) < 2 || len(token) > 1+maxColumnDigits {
		return mb.Coordinates{}, cerr.ErrMalformedCoordinateInput(raw)
	}

	letter := token[0]
	if letter < 'A' || letter > 'Z' {
		return mb.Coordinates{}, cerr.ErrMalformedCoordinateInput(raw)
	}

	digits := token[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return mb.Coordinates{}, cerr.ErrMalformedCoordinateInput(raw)
		}
	}
	number, err := strconv.Atoi(digits)
	if err != nil {
		return mb.Coordinates{}, cerr.ErrMalformedCoordinateInput(raw)
	}

	row, col := int(letter-'A'), number-1
	if row >= gridSize || col < 0 || col >= gridSize {
		return mb.Coordinates{}, cerr.ErrXorYOutOfGridBound(row, col)
	}
	return mb.NewCoordinates(row, col), nil
}

// ParseReplayAnswer: 1 plays again, any other integer exits.
func ParseReplayAnswer(raw string) (Signal, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return NewSignal(CodeExit), cerr.ErrReplayAnswer(raw)
	}
	if n == 1 {
		return NewSignal(CodeRematch), nil
	}
	return NewSignal(CodeExit), nil
}

func FormatCoordinates(c mb.Coordinates) string {
	return string(rune('A'+c.Row)) + strconv.Itoa(c.Col+1)
}
