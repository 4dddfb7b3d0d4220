package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run immediately",
	Long: `Skip the menu and start flying.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  B          - Back to menu (while paused)
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider gaps, slower scroll
  normal - The default layout
  hard   - Narrow gaps, faster scroll

Examples:
  arcade play
  arcade play --difficulty easy
  arcade play --seed 42
  arcade play --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(true)
	},
}
