package connection

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		raw         string
		expected    mb.Coordinates
		expectedErr error
	}{
		{raw: "A1", expected: mb.NewCoordinates(0, 0)},
		{raw: "C10", expected: mb.NewCoordinates(2, 9)},
		{raw: "j10", expected: mb.NewCoordinates(9, 9)},
		{raw: "  b7 ", expected: mb.NewCoordinates(1, 6)},
		{raw: "A01", expected: mb.NewCoordinates(0, 0)},
		{raw: "K1", expectedErr: cerr.ErrOutOfGridBound},
		{raw: "A11", expectedErr: cerr.ErrOutOfGridBound},
		{raw: "A0", expectedErr: cerr.ErrOutOfGridBound},
		{raw: "", expectedErr: cerr.ErrMalformedCoordinate},
		{raw: "A", expectedErr: cerr.ErrMalformedCoordinate},
		{raw: "1A", expectedErr: cerr.ErrMalformedCoordinate},
		{raw: "A100", expectedErr: cerr.ErrMalformedCoordinate},
		{raw: "A-1", expectedErr: cerr.ErrMalformedCoordinate},
		{raw: "A 1", expectedErr: cerr.ErrMalformedCoordinate},
		{raw: "hello", expectedErr: cerr.ErrMalformedCoordinate},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			c, err := ParseCoordinates(test.raw, mb.GridSize)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
			}
			if err == nil && c != test.expected {
				t.Fatalf("expected coordinates: %+v\tgot: %+v", test.expected, c)
			}
		})
	}
}

func TestParseSignal(t *testing.T) {
	tests := []struct {
		raw          string
		expectedCode uint8
	}{
		{raw: "EH", expectedCode: CodeRevealToggle},
		{raw: "eh", expectedCode: CodeRevealToggle},
		{raw: " Eh ", expectedCode: CodeRevealToggle},
		{raw: "E5", expectedCode: CodeAttack},
		{raw: "EHH", expectedCode: CodeInvalidSignal},
		{raw: "Z1", expectedCode: CodeInvalidSignal},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			signal := ParseSignal(test.raw, mb.GridSize)
			if signal.Code != test.expectedCode {
				t.Fatalf("expected code: %d\tgot: %d", test.expectedCode, signal.Code)
			}
			if signal.Raw != test.raw {
				t.Fatalf("expected raw: %q\tgot: %q", test.raw, signal.Raw)
			}
			if (signal.Code == CodeInvalidSignal) != (signal.Err != nil) {
				t.Fatalf("expected error only on invalid signals\tgot: %v", signal.Err)
			}
		})
	}
}

func TestParseReplayAnswer(t *testing.T) {
	tests := []struct {
		raw          string
		expectedCode uint8
		expectedErr  error
	}{
		{raw: "1", expectedCode: CodeRematch},
		{raw: " 1 ", expectedCode: CodeRematch},
		{raw: "0", expectedCode: CodeExit},
		{raw: "2", expectedCode: CodeExit},
		{raw: "-1", expectedCode: CodeExit},
		{raw: "yes", expectedCode: CodeExit, expectedErr: cerr.ErrInvalidReplayAnswer},
		{raw: "", expectedCode: CodeExit, expectedErr: cerr.ErrInvalidReplayAnswer},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			signal, err := ParseReplayAnswer(test.raw)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
			}
			if signal.Code != test.expectedCode {
				t.Fatalf("expected code: %d\tgot: %d", test.expectedCode, signal.Code)
			}
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	if got := FormatCoordinates(mb.NewCoordinates(2, 9)); got != "C10" {
		t.Fatalf("expected: %s\tgot: %s", "C10", got)
	}
}
