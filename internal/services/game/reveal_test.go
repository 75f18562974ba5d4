package game

import (
	"github.com/mcoot/minesweeper/internal/model"
)

// Uncover tests

func (s *EngineSuite) TestUncoverNumberRevealsOnlyItself() {
	s.engine.PlaceMinesAt(numberedLayout...)

	s.True(s.engine.Uncover(model.Pos(2, 2)))

	s.Equal(1, s.engine.UncoveredCount())
	s.Equal(model.TileUncovered, s.tileState(2, 2))
	s.Equal(model.GameRunning, s.engine.Status())
}

func (s *EngineSuite) TestFloodFillRevealsZeroRegion() {
	s.engine.PlaceMinesAt(wallLayout...)

	s.True(s.engine.Uncover(model.Pos(8, 8)))

	s.Equal(36, s.engine.UncoveredCount())
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if col >= 5 {
				s.Equal(model.TileUncovered, s.tileState(col, row), "(%d,%d)", col, row)
			} else {
				s.Equal(model.TileCovered, s.tileState(col, row), "(%d,%d)", col, row)
			}
		}
	}
	s.Equal(model.GameRunning, s.engine.Status())
}

func (s *EngineSuite) TestFloodFillNeverRevealsFlaggedTiles() {
	s.engine.PlaceMinesAt(wallLayout...)
	s.engine.CycleFlag(model.Pos(7, 7))
	s.engine.CycleFlag(model.Pos(6, 2))

	s.engine.Uncover(model.Pos(8, 8))

	s.Equal(model.TileFlagged, s.tileState(7, 7))
	s.Equal(model.TileFlagged, s.tileState(6, 2))
	s.Equal(34, s.engine.UncoveredCount())
	s.Equal(2, s.engine.FlagsPlaced())
}

func (s *EngineSuite) TestFloodFillRevealsQuestionedTiles() {
	s.engine = s.newEngine(Config{Cols: 9, Rows: 9, Mines: 10, QuestionMarks: true})
	s.engine.PlaceMinesAt(wallLayout...)
	s.engine.CycleFlag(model.Pos(7, 7))
	s.engine.CycleFlag(model.Pos(7, 7))
	s.Require().Equal(model.TileQuestioned, s.tileState(7, 7))

	s.engine.Uncover(model.Pos(8, 8))

	s.Equal(model.TileUncovered, s.tileState(7, 7))
	s.Equal(36, s.engine.UncoveredCount())
}

func (s *EngineSuite) TestUncoverQuestionedTile() {
	s.engine = s.newEngine(Config{Cols: 9, Rows: 9, Mines: 10, QuestionMarks: true})
	s.engine.PlaceMinesAt(numberedLayout...)
	s.engine.CycleFlag(model.Pos(2, 2))
	s.engine.CycleFlag(model.Pos(2, 2))

	s.True(s.engine.Uncover(model.Pos(2, 2)))
	s.Equal(model.TileUncovered, s.tileState(2, 2))
}

func (s *EngineSuite) TestUncoverFlaggedTileIsNoop() {
	s.engine.CycleFlag(model.Pos(3, 3))

	s.False(s.engine.Uncover(model.Pos(3, 3)))

	s.Equal(model.TileFlagged, s.tileState(3, 3))
	s.False(s.engine.MinesPlaced())
	s.Equal(0, s.engine.UncoveredCount())
}

func (s *EngineSuite) TestUncoverTwiceWithoutFlagsIsNoop() {
	s.engine.PlaceMinesAt(numberedLayout...)
	s.engine.Uncover(model.Pos(2, 2))

	s.False(s.engine.Uncover(model.Pos(2, 2)))
	s.Equal(1, s.engine.UncoveredCount())
}

// Loss tests

func (s *EngineSuite) TestUncoverMineLoses() {
	s.engine.PlaceMinesAt(numberedLayout...)
	s.engine.Uncover(model.Pos(2, 2))
	before := s.engine.Grid().Clone()

	s.True(s.engine.Uncover(model.Pos(4, 4)))

	s.Equal(model.GameLost, s.engine.Status())
	s.Equal(2, s.engine.UncoveredCount())
	after := s.engine.Grid()
	for _, pos := range after.Positions() {
		if pos == model.Pos(4, 4) {
			s.Equal(model.TileUncovered, after.At(pos).State)
			continue
		}
		s.Equal(*before.At(pos), *after.At(pos), "tile %s changed", pos)
	}
}

func (s *EngineSuite) TestLossDiscardsQueuedTiles() {
	s.engine.PlaceMinesAt(chordLayout...)
	s.engine.Uncover(model.Pos(4, 4))
	// Wrong flags: the real mines are (3,3) and (5,5)
	s.engine.CycleFlag(model.Pos(4, 3))
	s.engine.CycleFlag(model.Pos(3, 4))

	s.True(s.engine.Uncover(model.Pos(4, 4)))

	s.Equal(model.GameLost, s.engine.Status())
	s.Equal(2, s.engine.UncoveredCount())
	s.Equal(model.TileUncovered, s.tileState(5, 5))
	for _, pos := range []model.Position{model.Pos(3, 3), model.Pos(5, 3), model.Pos(5, 4), model.Pos(3, 5), model.Pos(4, 5)} {
		s.Equal(model.TileCovered, s.tileState(pos.Col, pos.Row), "tile %s revealed after loss", pos)
	}
}

// Chord tests

func (s *EngineSuite) TestChordRevealsRemainingNeighbors() {
	s.engine.PlaceMinesAt(chordLayout...)
	s.engine.Uncover(model.Pos(4, 4))
	s.Require().Equal(2, s.engine.Grid().At(model.Pos(4, 4)).AdjacentCount)
	s.Require().Equal(1, s.engine.UncoveredCount())
	s.engine.CycleFlag(model.Pos(3, 3))
	s.engine.CycleFlag(model.Pos(5, 5))

	s.True(s.engine.Uncover(model.Pos(4, 4)))

	for _, pos := range s.engine.Grid().Neighbors(model.Pos(4, 4)) {
		if pos == model.Pos(3, 3) || pos == model.Pos(5, 5) {
			s.Equal(model.TileFlagged, s.tileState(pos.Col, pos.Row))
		} else {
			s.Equal(model.TileUncovered, s.tileState(pos.Col, pos.Row), "neighbour %s", pos)
		}
	}
	s.NotEqual(model.GameLost, s.engine.Status())
	s.Greater(s.engine.UncoveredCount(), 7)
}

func (s *EngineSuite) TestChordWithMismatchedFlagsIsNoop() {
	s.engine.PlaceMinesAt(chordLayout...)
	s.engine.Uncover(model.Pos(4, 4))
	s.engine.CycleFlag(model.Pos(3, 3))

	s.False(s.engine.Uncover(model.Pos(4, 4)))

	s.Equal(1, s.engine.UncoveredCount())
	s.Equal(model.TileCovered, s.tileState(5, 5))
	s.Contains(s.logs.Messages(), "chord ignored")
}

func (s *EngineSuite) TestChordWithNothingHiddenIsNoop() {
	s.engine.PlaceMinesAt(wallLayout...)
	s.engine.Uncover(model.Pos(8, 8))
	uncovered := s.engine.UncoveredCount()

	s.False(s.engine.Uncover(model.Pos(8, 8)))
	s.Equal(uncovered, s.engine.UncoveredCount())
}

// Win tests

func (s *EngineSuite) TestWinByUncoveringEverySafeTile() {
	s.engine.PlaceMinesAt(numberedLayout...)
	grid := s.engine.Grid()

	for _, pos := range grid.Positions() {
		if grid.At(pos).IsMine {
			continue
		}
		s.Require().Equal(model.GameRunning, s.engine.Status())
		s.True(s.engine.Uncover(pos))
		if s.engine.UncoveredCount() < 71 {
			s.Equal(model.GameRunning, s.engine.Status())
		}
	}

	s.Equal(model.GameWon, s.engine.Status())
	s.Equal(71, s.engine.UncoveredCount())
}

func (s *EngineSuite) TestWinOnFirstClickWhenBoardIsOneRegion() {
	s.engine = s.newEngine(Config{Cols: 9, Rows: 9, Mines: 10, SafeZone: SafeZoneTile})

	s.engine.Uncover(model.Pos(8, 8))

	s.Equal(model.GameWon, s.engine.Status())
	s.Equal(71, s.engine.UncoveredCount())
	s.Equal(model.TileCovered, s.tileState(0, 1))
}

// Frozen state tests

func (s *EngineSuite) assertFrozen() {
	before := s.engine.Grid().Clone()
	status := s.engine.Status()
	uncovered := s.engine.UncoveredCount()
	flags := s.engine.FlagsPlaced()

	for _, pos := range before.Positions() {
		s.False(s.engine.Uncover(pos))
		s.False(s.engine.CycleFlag(pos))
	}

	s.Equal(before.Tiles, s.engine.Grid().Tiles)
	s.Equal(status, s.engine.Status())
	s.Equal(uncovered, s.engine.UncoveredCount())
	s.Equal(flags, s.engine.FlagsPlaced())
}

func (s *EngineSuite) TestFrozenAfterLoss() {
	s.engine.PlaceMinesAt(numberedLayout...)
	s.engine.CycleFlag(model.Pos(8, 8))
	s.engine.Uncover(model.Pos(4, 4))
	s.Require().Equal(model.GameLost, s.engine.Status())

	s.assertFrozen()
}

func (s *EngineSuite) TestFrozenAfterWin() {
	s.engine = s.newEngine(Config{Cols: 9, Rows: 9, Mines: 10, SafeZone: SafeZoneTile})
	s.engine.Uncover(model.Pos(8, 8))
	s.Require().Equal(model.GameWon, s.engine.Status())

	s.assertFrozen()
}
