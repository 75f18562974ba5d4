package game

import (
	"log/slog"

	"github.com/mcoot/minesweeper/internal/model"
)

// Uncover reveals the tile at pos. On an already uncovered tile it chords:
// when the flags around it match its number, every other hidden neighbour is
// revealed at once. The first uncover of a game places the mines.
//
// Returns false when nothing changed: the game is over, the tile is flagged,
// or a chord did not apply.
func (e *Engine) Uncover(pos model.Position) bool {
	tile := e.grid.At(pos)
	if e.status != model.GameRunning || tile.IsFlagged() {
		return false
	}

	if !e.minesPlaced {
		e.placeMines(pos)
	}

	if tile.IsUncovered() {
		return e.chord(pos)
	}

	e.flood(pos)
	return true
}

func (e *Engine) chord(pos model.Position) bool {
	tile := e.grid.At(pos)

	flagged := 0
	var hidden []model.Position
	for _, n := range e.grid.Neighbors(pos) {
		neighbor := e.grid.At(n)
		switch {
		case neighbor.IsFlagged():
			flagged++
		case !neighbor.IsUncovered():
			hidden = append(hidden, n)
		}
	}

	if flagged != tile.AdjacentCount {
		e.logger.Debug("chord ignored",
			slog.String("game_id", string(e.id)),
			slog.String("pos", pos.String()),
			slog.Int("flags", flagged),
			slog.Int("adjacent", tile.AdjacentCount),
		)
		return false
	}
	if len(hidden) == 0 {
		return false
	}

	e.flood(hidden...)
	return true
}

// flood reveals the seeds and spreads through zero tiles. The Uncovered state
// is the visited marker: a position may be pushed several times but is only
// revealed on its first pop. Flagged tiles are never pushed. Hitting a mine
// ends the game and discards the rest of the work list.
func (e *Engine) flood(seeds ...model.Position) {
	stack := append([]model.Position(nil), seeds...)

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tile := e.grid.At(pos)
		if tile.IsUncovered() {
			continue
		}
		tile.State = model.TileUncovered
		e.uncovered++

		if tile.IsMine {
			e.finish(model.GameLost)
			return
		}

		if tile.AdjacentCount == 0 {
			for _, n := range e.grid.Neighbors(pos) {
				if e.grid.At(n).IsRevealable() {
					stack = append(stack, n)
				}
			}
		}
	}

	if e.uncovered == e.safeTarget() {
		e.finish(model.GameWon)
	}
}
