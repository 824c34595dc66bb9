package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/rs/zerolog"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-console/db/sqlc"
	"github.com/saeidalz13/battleship-console/internal"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
	mc "github.com/saeidalz13/battleship-console/models/connection"
)

type Analytics interface {
	IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error
	IncrementRematchCalledCount(ctx context.Context, serverIpNet pqtype.Inet) error
}

var _ Analytics = (*sqlc.AnalyticsManager)(nil)

// Processor runs a console session: rounds of attacks until the fleet is
// sunk, then the replay question.
type Processor struct {
	gameManager mb.GameManager
	analytics   Analytics
	scanner     *bufio.Scanner
	lines       chan inputLine
	out         io.Writer
	logger      zerolog.Logger
	ipnet       net.IPNet
}

type inputLine struct {
	text string
	err  error
}

type Option func(*Processor) error

func WithInput(r io.Reader) Option {
	return func(p *Processor) error {
		if r == nil {
			return errors.New("input reader is nil")
		}
		p.scanner = bufio.NewScanner(r)
		return nil
	}
}

func WithOutput(w io.Writer) Option {
	return func(p *Processor) error {
		if w == nil {
			return errors.New("output writer is nil")
		}
		p.out = w
		return nil
	}
}

func WithAnalytics(analytics Analytics) Option {
	return func(p *Processor) error {
		p.analytics = analytics
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Processor) error {
		p.logger = logger
		return nil
	}
}

func WithIpNet(ipnet net.IPNet) Option {
	return func(p *Processor) error {
		p.ipnet = ipnet
		return nil
	}
}

func NewProcessor(gameManager mb.GameManager, optFuncs ...Option) (*Processor, error) {
	p := Processor{
		gameManager: gameManager,
		scanner:     bufio.NewScanner(os.Stdin),
		out:         os.Stdout,
		logger:      zerolog.Nop(),
	}
	for _, opt := range optFuncs {
		if err := opt(&p); err != nil {
			return nil, err
		}
	}
	if p.analytics != nil && p.ipnet.IP == nil {
		p.ipnet = internal.HostIpNet()
	}

	return &p, nil
}

// Run blocks until the player declines a replay, input ends, or ctx is
// done. End of input is a normal exit. A Processor runs one session only.
func (p *Processor) Run(ctx context.Context) error {
	p.startReading(ctx)

	game, err := p.gameManager.CreateGame()
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to build board")
		return err
	}
	p.recordGameCreated(ctx, game)

	defer func() {
		p.gameManager.TerminateGame(game.Uuid())
	}()

sessionLoop:
	for {
		glog := p.logger.With().Str("game_uuid", game.Uuid()).Logger()
		glog.Info().Int("ships", len(game.Board().Ships())).Msg("game created")

		p.write(TextInstructions)
		if err := RenderGrid(p.out, game.Board()); err != nil {
			return err
		}

		if err := p.playRound(ctx, game, glog); err != nil {
			if errors.Is(err, io.EOF) {
				glog.Info().Int("turns", game.Turns()).Msg("input closed mid game")
				return nil
			}
			return err
		}

		end := EndGameMessage(game)
		glog.Info().Int("turns", end.Payload.Turns).Msg("game over")
		p.writeln(TextWin)
		p.writeln(TextReplayPrompt)

		line, err := p.readLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		signal, err := mc.ParseReplayAnswer(line)
		if err != nil {
			glog.Warn().Err(err).Msg("treating replay answer as exit")
		}

		switch signal.Code {
		case mc.CodeRematch:
			p.recordRematch(ctx, glog)

			nextGame, err := p.gameManager.ResetForNewGame(game.Uuid())
			if err != nil {
				glog.Error().Err(err).Msg("failed to build board for rematch")
				return err
			}
			glog.Info().Str("next_game_uuid", nextGame.Uuid()).Msg("rematch")
			game = nextGame
			p.recordGameCreated(ctx, game)

		default:
			p.writeln(TextGoodbye)
			break sessionLoop
		}
	}

	return nil
}

func (p *Processor) playRound(ctx context.Context, game *mb.Game, glog zerolog.Logger) error {
	for !game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.writeln(TextPrompt)
		line, err := p.readLine(ctx)
		if err != nil {
			return err
		}

		req := NewRequest(line, game.Board().Size())
		switch req.Code() {

		// Reveal toggle consumes the line without attacking
		case mc.CodeRevealToggle:
			msg := req.HandleRevealToggle(game)
			glog.Debug().Bool("reveal_mode", msg.Payload.RevealMode).Msg("reveal toggled")
			if msg.Payload.RevealMode {
				p.write(TextHacksEnabled)
			} else {
				p.write(TextHacksDisabled)
			}
			if err := RenderGrid(p.out, game.Board()); err != nil {
				return err
			}

		default:
			msg := req.HandleAttack(game)
			if msg.Error != nil {
				glog.Debug().Str("input", line).Str("error", msg.Error.ErrorDetails).Msg("attack rejected")
				p.write(msg.Error.Message)
				continue
			}
			if err := p.reportAttack(game, msg, glog); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Processor) reportAttack(game *mb.Game, msg mc.Message[mc.RespAttack], glog zerolog.Logger) error {
	target := mc.FormatCoordinates(mb.NewCoordinates(msg.Payload.Row, msg.Payload.Col))
	glog.Debug().Str("target", target).Uint8("code", msg.Code).Msg("attack resolved")

	if msg.Code == mc.CodeMiss {
		p.write(TextMiss)
	} else {
		p.write(TextHit)
	}
	if err := RenderGrid(p.out, game.Board()); err != nil {
		return err
	}

	if msg.Code != mc.CodeSunk {
		return nil
	}
	glog.Info().
		Str("ship", msg.Payload.ShipName).
		Int("remaining_ships", msg.Payload.RemainingShips).
		Msg("ship sunk")

	p.write(fmt.Sprintf(TextSunkFormat, msg.Payload.ShipName))
	for _, name := range msg.Payload.StandingShips {
		p.writeln(fmt.Sprintf(TextStandingFormat, name))
	}
	p.writeln("")
	return nil
}

// startReading scans input on its own goroutine so a blocked read never
// holds up cancellation. The goroutine stays parked in Scan until the
// reader returns; it stops sending once ctx is done.
func (p *Processor) startReading(ctx context.Context) {
	p.lines = make(chan inputLine)

	go func() {
		defer close(p.lines)
		for p.scanner.Scan() {
			select {
			case p.lines <- inputLine{text: p.scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		err := p.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case p.lines <- inputLine{err: err}:
		case <-ctx.Done():
		}
	}()
}

func (p *Processor) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

func (p *Processor) write(s string) {
	_, _ = io.WriteString(p.out, s)
}

func (p *Processor) writeln(s string) {
	p.write(s + "\n")
}

func (p *Processor) serverInet() pqtype.Inet {
	return pqtype.Inet{IPNet: p.ipnet, Valid: true}
}

func (p *Processor) recordGameCreated(ctx context.Context, game *mb.Game) {
	if p.analytics == nil {
		return
	}
	if err := p.analytics.IncrementGamesCreatedCount(ctx, p.serverInet()); err != nil {
		// for now not killing the game for it
		p.logger.Warn().Err(err).Str("game_uuid", game.Uuid()).Msg("failed to record game creation")
	}
}

func (p *Processor) recordRematch(ctx context.Context, glog zerolog.Logger) {
	if p.analytics == nil {
		return
	}
	if err := p.analytics.IncrementRematchCalledCount(ctx, p.serverInet()); err != nil {
		glog.Warn().Err(err).Msg("failed to record rematch")
	}
}
