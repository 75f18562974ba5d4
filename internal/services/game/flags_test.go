package game

import (
	"github.com/mcoot/minesweeper/internal/model"
)

// CycleFlag tests

func (s *EngineSuite) TestCycleFlagWithoutQuestionMarks() {
	pos := model.Pos(2, 3)

	s.True(s.engine.CycleFlag(pos))
	s.Equal(model.TileFlagged, s.tileState(2, 3))
	s.Equal(1, s.engine.FlagsPlaced())

	s.True(s.engine.CycleFlag(pos))
	s.Equal(model.TileCovered, s.tileState(2, 3))
	s.Equal(0, s.engine.FlagsPlaced())
}

func (s *EngineSuite) TestCycleFlagWithQuestionMarks() {
	s.engine = s.newEngine(Config{Cols: 9, Rows: 9, Mines: 10, QuestionMarks: true})
	pos := model.Pos(2, 3)

	s.True(s.engine.CycleFlag(pos))
	s.Equal(model.TileFlagged, s.tileState(2, 3))
	s.Equal(1, s.engine.FlagsPlaced())

	s.True(s.engine.CycleFlag(pos))
	s.Equal(model.TileQuestioned, s.tileState(2, 3))
	s.Equal(0, s.engine.FlagsPlaced())

	s.True(s.engine.CycleFlag(pos))
	s.Equal(model.TileCovered, s.tileState(2, 3))
	s.Equal(0, s.engine.FlagsPlaced())
}

func (s *EngineSuite) TestCycleFlagOnUncoveredTileIsNoop() {
	s.engine.PlaceMinesAt(numberedLayout...)
	s.engine.Uncover(model.Pos(2, 2))

	s.False(s.engine.CycleFlag(model.Pos(2, 2)))
	s.Equal(model.TileUncovered, s.tileState(2, 2))
	s.Equal(0, s.engine.FlagsPlaced())
}

func (s *EngineSuite) TestFlagsCountIndependentTiles() {
	s.engine.CycleFlag(model.Pos(0, 0))
	s.engine.CycleFlag(model.Pos(1, 0))
	s.engine.CycleFlag(model.Pos(2, 0))
	s.engine.CycleFlag(model.Pos(1, 0))

	s.Equal(2, s.engine.FlagsPlaced())
	s.Equal(8, s.engine.MinesRemaining())
	s.Equal(s.engine.Grid().CountState(model.TileFlagged), s.engine.FlagsPlaced())
}

func (s *EngineSuite) TestMinesRemainingGoesNegative() {
	for col := 0; col < 9; col++ {
		s.engine.CycleFlag(model.Pos(col, 0))
	}
	s.engine.CycleFlag(model.Pos(0, 1))
	s.engine.CycleFlag(model.Pos(1, 1))

	s.Equal(11, s.engine.FlagsPlaced())
	s.Equal(-1, s.engine.MinesRemaining())
}
