package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// ErrPanic is returned in place of a panic raised while handling a command
var ErrPanic = errors.New("internal error")

// Recovery creates middleware that turns a panic into ErrPanic so the
// session survives it
func Recovery[C fmt.Stringer](logger *slog.Logger) Middleware[C] {
	return func(next Handler[C]) Handler[C] {
		return func(cmd C) (quit bool, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						slog.Any("error", r),
						slog.String("stack", string(debug.Stack())),
						slog.String("command", cmd.String()),
					)

					quit, err = false, fmt.Errorf("%w: %v", ErrPanic, r)
				}
			}()

			return next(cmd)
		}
	}
}
