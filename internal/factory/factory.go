package factory

import (
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/services/game"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Engine is the single game engine driven by the presentation layer
	Engine *game.Engine
}

// Config holds configuration for the application factory
type Config struct {
	// Game holds the board parameters
	// If zero value, defaults to game.DefaultConfig()
	Game game.Config
	// Seed makes mine placement reproducible (optional)
	// If nil, a crypto/rand source is used
	Seed *uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	gameCfg := cfg.Game
	if gameCfg == (game.Config{}) {
		gameCfg = game.DefaultConfig()
	}

	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
		logger.Debug("using seeded random source", slog.Uint64("seed", *cfg.Seed))
	}

	return newWithDependencies(gameCfg, clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(gameCfg game.Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	engine, err := game.NewEngine(gameCfg, clk, rnd, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Clock:  clk,
		Random: rnd,
		Logger: logger,
		Engine: engine,
	}, nil
}
