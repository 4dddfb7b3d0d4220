package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Resolve the game configuration the same way a run does and print it as YAML.

Lookup order:
  1. --config <path>
  2. ~/.arcade/configs/rocket.yaml
  3. ./configs/rocket.yaml
  4. built-in defaults

--difficulty is applied on top. The output is a valid rocket.yaml, so it can
be saved and edited:

  arcade config --difficulty hard > ~/.arcade/configs/rocket.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRocketConfig()
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	},
}
