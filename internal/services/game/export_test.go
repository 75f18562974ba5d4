package game

import "github.com/mcoot/minesweeper/internal/model"

// PlaceMinesAt lays mines at exactly the given positions instead of drawing
// them at random, as if the first uncover had already happened.
func (e *Engine) PlaceMinesAt(positions ...model.Position) {
	for _, pos := range positions {
		e.layMine(pos)
	}
	e.minesPlaced = true
	e.stopwatch.Start()
}

// Grid exposes the unmasked grid
func (e *Engine) Grid() *model.Grid {
	return e.grid
}
