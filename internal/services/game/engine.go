package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// Engine owns one minefield and its game lifecycle.
//
// All commands run to completion synchronously. An Engine is not safe for
// concurrent use. Coordinates outside the grid are a programming error and
// cause a panic; every other command on an in-bounds tile either applies or is
// a silent no-op reported by a false return.
type Engine struct {
	cfg    Config
	clock  clock.Clock
	random random.Random
	logger *slog.Logger

	id          model.GameID
	grid        *model.Grid
	status      model.GameStatus
	minesPlaced bool
	uncovered   int
	flags       int
	stopwatch   *clock.Stopwatch
}

// NewEngine validates cfg and creates an engine with a fresh, mine-free grid
func NewEngine(cfg Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		cfg:    cfg.withDefaults(),
		clock:  clk,
		random: rnd,
		logger: logger,
	}
	e.reset()

	e.logger.Debug("engine created",
		slog.String("game_id", string(e.id)),
		slog.Int("cols", e.cfg.Cols),
		slog.Int("rows", e.cfg.Rows),
		slog.Int("mines", e.cfg.Mines),
		slog.String("safe_zone", string(e.cfg.SafeZone)),
	)

	return e, nil
}

// Restart throws away the current game and starts a new one with the same configuration
func (e *Engine) Restart() {
	previous := e.id
	e.reset()
	e.logger.Info("game restarted",
		slog.String("previous_game_id", string(previous)),
		slog.String("game_id", string(e.id)),
	)
}

func (e *Engine) reset() {
	e.id = model.GameID(uuid.NewString())
	e.grid = model.NewGrid(e.cfg.Cols, e.cfg.Rows)
	e.status = model.GameRunning
	e.minesPlaced = false
	e.uncovered = 0
	e.flags = 0
	e.stopwatch = clock.NewStopwatch(e.clock)
}

// Query surface

// ID returns the identifier of the current game
func (e *Engine) ID() model.GameID {
	return e.id
}

// Config returns the configuration the engine was built with
func (e *Engine) Config() Config {
	return e.cfg
}

// Status returns the lifecycle status of the current game
func (e *Engine) Status() model.GameStatus {
	return e.status
}

func (e *Engine) Cols() int {
	return e.cfg.Cols
}

func (e *Engine) Rows() int {
	return e.cfg.Rows
}

func (e *Engine) MineCount() int {
	return e.cfg.Mines
}

// FlagsPlaced returns the number of tiles currently flagged
func (e *Engine) FlagsPlaced() int {
	return e.flags
}

// UncoveredCount returns the number of uncovered tiles
func (e *Engine) UncoveredCount() int {
	return e.uncovered
}

// MinesPlaced reports whether the first uncover has laid the mines
func (e *Engine) MinesPlaced() bool {
	return e.minesPlaced
}

// MinesRemaining is the classic counter: mines minus flags. It goes negative
// when the player over-flags.
func (e *Engine) MinesRemaining() int {
	return e.cfg.Mines - e.flags
}

// Elapsed returns the time since the first uncover, frozen once the game ends
func (e *Engine) Elapsed() time.Duration {
	return e.stopwatch.Elapsed()
}

// Contains reports whether pos lies on the grid
func (e *Engine) Contains(pos model.Position) bool {
	return e.grid.Contains(pos)
}

// Tile returns a copy of the tile at pos. While the game is running, mine
// data of tiles that are not uncovered is hidden.
func (e *Engine) Tile(pos model.Position) model.Tile {
	return e.visible(*e.grid.At(pos))
}

// Snapshot is a read-only copy of the engine state
type Snapshot struct {
	ID          model.GameID
	Status      model.GameStatus
	Cols        int
	Rows        int
	Mines       int
	FlagsPlaced int
	Uncovered   int
	MinesPlaced bool
	Elapsed     time.Duration
	Tiles       [][]model.Tile // Row-major: Tiles[row][col]
}

// Snapshot copies the current state. Mine data is masked the same way as Tile.
func (e *Engine) Snapshot() Snapshot {
	grid := e.grid.Clone()
	for row := range grid.Tiles {
		for col := range grid.Tiles[row] {
			grid.Tiles[row][col] = e.visible(grid.Tiles[row][col])
		}
	}
	return Snapshot{
		ID:          e.id,
		Status:      e.status,
		Cols:        e.cfg.Cols,
		Rows:        e.cfg.Rows,
		Mines:       e.cfg.Mines,
		FlagsPlaced: e.flags,
		Uncovered:   e.uncovered,
		MinesPlaced: e.minesPlaced,
		Elapsed:     e.Elapsed(),
		Tiles:       grid.Tiles,
	}
}

func (e *Engine) visible(t model.Tile) model.Tile {
	if e.status == model.GameRunning && !t.IsUncovered() {
		t.IsMine = false
		t.AdjacentCount = 0
	}
	return t
}

// safeTarget is the number of uncovered tiles that wins the game
func (e *Engine) safeTarget() int {
	return e.grid.Size() - e.cfg.Mines
}

func (e *Engine) finish(status model.GameStatus) {
	e.status = status
	e.stopwatch.Stop()

	msg := "game won"
	if status == model.GameLost {
		msg = "game lost"
	}
	e.logger.Info(msg,
		slog.String("game_id", string(e.id)),
		slog.Int("uncovered", e.uncovered),
		slog.Int("flags", e.flags),
		slog.Int64("elapsed_ms", e.Elapsed().Milliseconds()),
	)
}
