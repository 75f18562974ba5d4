package game

import "github.com/mcoot/minesweeper/internal/model"

// CycleFlag advances a hidden tile through Covered -> Flagged -> Covered, with
// a Questioned step before Covered when question marks are enabled. Returns
// false if the game is over or the tile is uncovered.
func (e *Engine) CycleFlag(pos model.Position) bool {
	tile := e.grid.At(pos)
	if e.status != model.GameRunning {
		return false
	}

	switch tile.State {
	case model.TileCovered:
		tile.State = model.TileFlagged
		e.flags++
	case model.TileFlagged:
		e.flags--
		if e.cfg.QuestionMarks {
			tile.State = model.TileQuestioned
		} else {
			tile.State = model.TileCovered
		}
	case model.TileQuestioned:
		tile.State = model.TileCovered
	case model.TileUncovered:
		return false
	}
	return true
}
