package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/minesweeper/internal/model"
)

// Action is a player command read from the input stream
type Action string

const (
	ActionUncover Action = "uncover"
	ActionFlag    Action = "flag"
	ActionRestart Action = "restart"
	ActionShow    Action = "show"
	ActionHelp    Action = "help"
	ActionQuit    Action = "quit"
)

// Command is a parsed line of input. Pos is only set for uncover and flag.
type Command struct {
	Action Action
	Pos    model.Position
}

func (c Command) String() string {
	if c.Action == ActionUncover || c.Action == ActionFlag {
		return fmt.Sprintf("%s %s", c.Action, c.Pos)
	}
	return string(c.Action)
}

var actionAliases = map[string]Action{
	"u":       ActionUncover,
	"uncover": ActionUncover,
	"f":       ActionFlag,
	"flag":    ActionFlag,
	"r":       ActionRestart,
	"restart": ActionRestart,
	"s":       ActionShow,
	"show":    ActionShow,
	"h":       ActionHelp,
	"help":    ActionHelp,
	"?":       ActionHelp,
	"q":       ActionQuit,
	"quit":    ActionQuit,
	"exit":    ActionQuit,
}

const helpText = `Commands:
  u x y, uncover x y   uncover a tile, or chord an uncovered number
  f x y, flag x y      cycle the mark on a covered tile
  r, restart           start a new game with the same settings
  s, show              redraw the board
  h, help              show this help
  q, quit              leave the game
Columns (x) and rows (y) count from 0 at the top left.`

// ParseCommand parses one input line. Coordinates are not checked against
// the board here.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	action, ok := actionAliases[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	args := fields[1:]
	switch action {
	case ActionUncover, ActionFlag:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: %s takes a column and a row", ErrBadArguments, action)
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: column %q is not a number", ErrBadArguments, args[0])
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: row %q is not a number", ErrBadArguments, args[1])
		}
		return Command{Action: action, Pos: model.Pos(x, y)}, nil
	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, action)
		}
		return Command{Action: action}, nil
	}
}
