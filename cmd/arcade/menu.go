package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Open the main menu: Start Game, High Scores, Reset Scores and Quit.

Controls:
  Up/Down    - Navigate
  Enter      - Select
  Q/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(false)
	},
}
