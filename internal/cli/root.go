package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command. level, if set, is raised to Debug
// by --verbose.
func NewRootCmd(base *slog.Logger, level *slog.LevelVar) *cobra.Command {
	cfg = DefaultConfig()
	logger = base
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Terminal minesweeper",
		Long: `minesweeper plays the classic mine-clearing game in the terminal.

Uncover every safe tile without hitting a mine. Numbers count the mines
around a tile; flags mark tiles you believe are mined.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
			return cfg.Validate()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: MINESWEEPER_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newPresetsCmd())

	return rootCmd
}

// Execute loads .env and runs the root command
func Execute(ctx context.Context, base *slog.Logger, level *slog.LevelVar) {
	if err := LoadDotEnv(".env"); err != nil {
		NewOutput(getEnvOrDefault("MINESWEEPER_OUTPUT", OutputText), os.Stdout, os.Stderr).PrintError(err)
		os.Exit(1)
	}

	if err := run(ctx, NewRootCmd(base, level)); err != nil {
		os.Exit(1)
	}
}

// run executes the command and reports a failure in the selected output format
func run(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).PrintError(err)
	}
	return err
}
