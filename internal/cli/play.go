package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/factory"
	"github.com/mcoot/minesweeper/internal/services/game"
)

// boardFlags override the preset board when non-zero
type boardFlags struct {
	cols  int
	rows  int
	mines int
}

func newPlayCmd() *cobra.Command {
	var (
		board boardFlags
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Start a game and read commands from standard input.

The board starts from a preset; --cols, --rows and --mines override its
dimensions. Type "help" during play for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameCfg, err := buildGameConfig(cfg, board)
			if err != nil {
				return err
			}

			factoryCfg := factory.Config{
				Game:   gameCfg,
				Logger: logger,
			}
			if cmd.Flags().Changed("seed") {
				factoryCfg.Seed = &seed
			}

			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return NewSession(app.Engine, out, app.Logger).Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVarP(&cfg.Preset, "preset", "p", cfg.Preset, "Board preset: beginner, intermediate, expert (env: MINESWEEPER_PRESET)")
	cmd.Flags().IntVar(&board.cols, "cols", 0, fmt.Sprintf("Board width, %d-%d", game.MinCols, game.MaxCols))
	cmd.Flags().IntVar(&board.rows, "rows", 0, fmt.Sprintf("Board height, %d-%d", game.MinRows, game.MaxRows))
	cmd.Flags().IntVar(&board.mines, "mines", 0, "Number of mines")
	cmd.Flags().BoolVar(&cfg.Questions, "questions", cfg.Questions, "Include question marks when cycling flags (env: MINESWEEPER_QUESTIONS)")
	cmd.Flags().StringVar(&cfg.SafeZone, "safe-zone", cfg.SafeZone, "First-click protection: tile, neighborhood (env: MINESWEEPER_SAFE_ZONE)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible mine placement")

	return cmd
}

// buildGameConfig resolves the preset, applies overrides and validates the result
func buildGameConfig(c *Config, board boardFlags) (game.Config, error) {
	preset, err := game.PresetByName(c.Preset)
	if err != nil {
		return game.Config{}, err
	}

	gameCfg := preset.Config()
	if board.cols != 0 {
		gameCfg.Cols = board.cols
	}
	if board.rows != 0 {
		gameCfg.Rows = board.rows
	}
	if board.mines != 0 {
		gameCfg.Mines = board.mines
	}

	zone, err := game.ParseSafeZone(c.SafeZone)
	if err != nil {
		return game.Config{}, err
	}
	gameCfg.SafeZone = zone
	gameCfg.QuestionMarks = c.Questions

	if err := gameCfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return gameCfg, nil
}
