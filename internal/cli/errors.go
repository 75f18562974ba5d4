package cli

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
	ErrOutOfBounds    = errors.New("position outside the board")
)
