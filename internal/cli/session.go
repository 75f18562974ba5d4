package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mcoot/minesweeper/internal/middleware"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
	"github.com/mcoot/minesweeper/internal/services/view"
)

// Session drives one engine from a stream of text commands
type Session struct {
	engine  *game.Engine
	out     *Output
	logger  *slog.Logger
	handler middleware.Handler[Command]
}

// NewSession creates a session for the engine
func NewSession(engine *game.Engine, out *Output, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		engine: engine,
		out:    out,
		logger: logger,
	}
	s.handler = middleware.Chain(s.Execute,
		middleware.Logging[Command](logger),
		middleware.Recovery[Command](logger),
	)
	return s
}

// Run shows the board and then executes commands from in until quit,
// end of input or cancellation. Bad input is reported and skipped.
// Cancellation ends the session without an error.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.show()

	lines, errc := readLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("session cancelled", slog.String("game_id", string(s.engine.ID())))
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if s.handleLine(line) {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. errc receives exactly one value before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// handleLine runs one input line and reports whether the session should end
func (s *Session) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		s.out.PrintError(err)
		return false
	}

	quit, err := s.handler(cmd)
	if err != nil {
		s.out.PrintError(err)
		return false
	}
	return quit
}

// Execute applies a single command. It returns true when the session should end.
func (s *Session) Execute(cmd Command) (bool, error) {
	switch cmd.Action {
	case ActionUncover, ActionFlag:
		if !s.engine.Contains(cmd.Pos) {
			return false, fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, cmd.Pos, s.engine.Cols(), s.engine.Rows())
		}
		s.play(cmd)
	case ActionRestart:
		s.engine.Restart()
		s.show()
	case ActionShow:
		s.show()
	case ActionHelp:
		s.out.PrintMessage(helpText)
	case ActionQuit:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Action)
	}
	return false, nil
}

func (s *Session) play(cmd Command) {
	before := s.engine.Status()

	var changed bool
	if cmd.Action == ActionUncover {
		changed = s.engine.Uncover(cmd.Pos)
	} else {
		changed = s.engine.CycleFlag(cmd.Pos)
	}

	s.logger.Debug("command applied",
		slog.String("game_id", string(s.engine.ID())),
		slog.String("action", string(cmd.Action)),
		slog.String("pos", cmd.Pos.String()),
		slog.Bool("changed", changed),
	)

	board := s.show()
	if before.IsOver() {
		s.out.PrintMessage("The game is over. Type r to play again.")
		return
	}

	switch board.Status {
	case string(model.GameWon):
		s.out.PrintOutcome(board, fmt.Sprintf("You win! Cleared in %ds.", board.ElapsedSeconds))
	case string(model.GameLost):
		s.out.PrintOutcome(board, "Boom! You hit a mine. Type r to play again.")
	}
}

func (s *Session) show() view.Board {
	board := view.Render(s.engine.Snapshot())
	s.out.PrintBoard(board)
	return board
}
