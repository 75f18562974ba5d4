package middleware

import (
	"fmt"
	"log/slog"
	"time"
)

// Handler executes one command and reports whether the session should end
type Handler[C fmt.Stringer] func(cmd C) (bool, error)

// Middleware wraps a Handler
type Middleware[C fmt.Stringer] func(Handler[C]) Handler[C]

// Chain applies middlewares so the first one listed runs outermost
func Chain[C fmt.Stringer](h Handler[C], mws ...Middleware[C]) Handler[C] {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Logging creates middleware that logs every handled command at debug level
func Logging[C fmt.Stringer](logger *slog.Logger) Middleware[C] {
	return func(next Handler[C]) Handler[C] {
		return func(cmd C) (bool, error) {
			start := time.Now()

			quit, err := next(cmd)

			attrs := []any{
				slog.String("command", cmd.String()),
				slog.Bool("quit", quit),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.Debug("command handled", attrs...)

			return quit, err
		}
	}
}
