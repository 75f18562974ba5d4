package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/model"
)

// placeMines lays the configured number of mines outside the safe zone around
// first, then starts the clock. Runs once per game.
func (e *Engine) placeMines(first model.Position) {
	safe := map[model.Position]bool{first: true}
	if e.cfg.SafeZone == SafeZoneNeighborhood {
		for _, n := range e.grid.Neighbors(first) {
			safe[n] = true
		}
	}

	candidates := make([]model.Position, 0, e.grid.Size())
	for _, pos := range e.grid.Positions() {
		if !safe[pos] {
			candidates = append(candidates, pos)
		}
	}
	if len(candidates) < e.cfg.Mines {
		panic(fmt.Sprintf("cannot place %d mines in %d free tiles", e.cfg.Mines, len(candidates)))
	}

	// Partial Fisher-Yates: candidates[:i] holds the mines chosen so far
	for i := 0; i < e.cfg.Mines; i++ {
		j := i + e.random.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		e.layMine(candidates[i])
	}

	e.minesPlaced = true
	e.stopwatch.Start()

	e.logger.Info("game started",
		slog.String("game_id", string(e.id)),
		slog.String("first_click", first.String()),
		slog.Int("cols", e.cfg.Cols),
		slog.Int("rows", e.cfg.Rows),
		slog.Int("mines", e.cfg.Mines),
	)
}

// layMine marks pos as a mine and bumps the count of each neighbour
func (e *Engine) layMine(pos model.Position) {
	e.grid.At(pos).IsMine = true
	for _, n := range e.grid.Neighbors(pos) {
		e.grid.At(n).AdjacentCount++
	}
}
