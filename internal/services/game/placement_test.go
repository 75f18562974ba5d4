package game

import (
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/testutil"
)

func (s *EngineSuite) mines() []model.Position {
	var result []model.Position
	grid := s.engine.Grid()
	for _, pos := range grid.Positions() {
		if grid.At(pos).IsMine {
			result = append(result, pos)
		}
	}
	return result
}

// Placement tests

func (s *EngineSuite) TestFirstUncoverPlacesMines() {
	s.True(s.engine.Uncover(model.Pos(4, 4)))

	s.True(s.engine.MinesPlaced())
	s.Equal(10, s.engine.Grid().CountMines())
	s.NotEqual(model.GameLost, s.engine.Status())
}

func (s *EngineSuite) TestPlacementDrawsFromRandomSource() {
	s.engine = s.newEngine(Config{Cols: 9, Rows: 9, Mines: 10, SafeZone: SafeZoneTile})

	s.engine.Uncover(model.Pos(8, 8))

	// A zero stream keeps candidates in row-major order
	expected := []model.Position{
		model.Pos(0, 0), model.Pos(1, 0), model.Pos(2, 0), model.Pos(3, 0), model.Pos(4, 0),
		model.Pos(5, 0), model.Pos(6, 0), model.Pos(7, 0), model.Pos(8, 0), model.Pos(0, 1),
	}
	s.ElementsMatch(expected, s.mines())
	s.Equal([]int{80, 79, 78, 77, 76, 75, 74, 73, 72, 71}, s.random.Calls)
}

func (s *EngineSuite) TestPlacementSwapsChosenCandidates() {
	s.engine = s.newEngine(Config{Cols: 9, Rows: 9, Mines: 10, SafeZone: SafeZoneTile})
	// Candidate 79 is (8,8) since the click at (0,0) is excluded
	s.random.QueueIntn(79)

	s.engine.Uncover(model.Pos(0, 0))

	s.True(s.engine.Grid().At(model.Pos(8, 8)).IsMine)
	s.False(s.engine.Grid().At(model.Pos(1, 0)).IsMine)
	s.Equal(10, s.engine.Grid().CountMines())
}

func (s *EngineSuite) TestNeighborhoodSafeZoneExcludesNeighbors() {
	s.engine.Uncover(model.Pos(0, 0))

	for _, pos := range []model.Position{model.Pos(0, 0), model.Pos(1, 0), model.Pos(0, 1), model.Pos(1, 1)} {
		s.False(s.engine.Grid().At(pos).IsMine, "mine inside safe zone at %s", pos)
	}
	s.Equal(77, s.random.Calls[0])
	s.Contains(s.mines(), model.Pos(2, 0))
	s.Contains(s.mines(), model.Pos(4, 1))
}

func (s *EngineSuite) TestFlaggingDoesNotPlaceMines() {
	s.engine.CycleFlag(model.Pos(3, 3))
	s.False(s.engine.MinesPlaced())
	s.Equal(0, s.engine.Grid().CountMines())
	s.Empty(s.random.Calls)
}

func (s *EngineSuite) TestFirstUncoverNeverLoses() {
	for _, zone := range []SafeZone{SafeZoneTile, SafeZoneNeighborhood} {
		cfg := Config{Cols: 9, Rows: 9, Mines: 64, SafeZone: zone}
		for i, pos := range model.NewGrid(9, 9).Positions() {
			engine, err := NewEngine(cfg, s.clock, random.NewSeeded(uint64(i)), testutil.NopLogger())
			s.Require().NoError(err)

			engine.Uncover(pos)

			s.NotEqual(model.GameLost, engine.Status(), "zone %s first click %s", zone, pos)
			s.False(engine.Grid().At(pos).IsMine)
			s.Equal(model.TileUncovered, engine.Grid().At(pos).State)
			s.Equal(64, engine.Grid().CountMines())
			if zone == SafeZoneNeighborhood {
				s.Equal(0, engine.Grid().At(pos).AdjacentCount)
			}
		}
	}
}

func (s *EngineSuite) TestAdjacentCountsMatchRecount() {
	for seed := uint64(0); seed < 20; seed++ {
		engine, err := NewEngine(Intermediate.Config(), s.clock, random.NewSeeded(seed), testutil.NopLogger())
		s.Require().NoError(err)
		engine.Uncover(model.Pos(7, 7))

		grid := engine.Grid()
		s.Equal(40, grid.CountMines())
		for _, pos := range grid.Positions() {
			expected := 0
			for _, n := range grid.Neighbors(pos) {
				if grid.At(n).IsMine {
					expected++
				}
			}
			s.Equal(expected, grid.At(pos).AdjacentCount, "seed %d at %s", seed, pos)
		}
	}
}

func (s *EngineSuite) TestMaximumDensityBoardsPlace() {
	cfg := Config{Cols: MaxCols, Rows: MaxRows, Mines: (MaxCols - 1) * (MaxRows - 1)}
	engine, err := NewEngine(cfg, s.clock, random.NewSeeded(7), testutil.NopLogger())
	s.Require().NoError(err)

	engine.Uncover(model.Pos(15, 12))

	s.Equal(cfg.Mines, engine.Grid().CountMines())
	s.NotEqual(model.GameLost, engine.Status())
}
