package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/services/game"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in board presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintPresets(game.Presets)
			return nil
		},
	}
}
