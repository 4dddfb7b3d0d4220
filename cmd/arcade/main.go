// arcade is Flappy Rocket for the terminal: steer a rocket through a stream
// of gapped barriers, locally or over SSH.
//
// Usage:
//
//	arcade                   - Start the interactive menu
//	arcade menu              - Same as above
//	arcade play              - Jump straight into a run
//	arcade scores            - Show, export or clear the high-score list
//	arcade sim               - Run the simulation headless
//	arcade config            - Print the effective game configuration
//	arcade serve             - Start the SSH server and optional HTTP score API
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Use a custom rocket.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Flappy Rocket - fly through the gaps in your terminal",
	Long: `Flappy Rocket is a terminal arcade game. The rocket falls under gravity;
flap to climb and slip through the gaps in the barriers. Every barrier you
pass scores a point. Touch a barrier or leave the screen and the run is over.

Available commands:
  menu     - Interactive menu (default)
  play     - Start a run immediately
  scores   - View, export or clear high scores
  sim      - Run the simulation without a terminal UI
  config   - Print the effective game configuration
  serve    - Start SSH server for remote play

Examples:
  arcade
  arcade play --difficulty hard
  arcade scores --json
  arcade sim --ticks 600 --flap-every 18 --seed 42
  arcade serve --ssh :2222 --http :8080`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(false)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom rocket.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// runInteractive runs a local terminal session.
func runInteractive(startPlaying bool) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they go to --log-file or nowhere.
	logger, closeLog, err := newLogger("rocket", true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score storage", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(tui.AppOptions{
		Store:  store,
		Params: params,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:       logger,
		StartPlaying: startPlaying,
	})
}

// loadRocketConfig resolves --config and --difficulty into a validated config.
func loadRocketConfig() (config.RocketConfig, error) {
	cfg, err := config.LoadRocket(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyRocketPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

func loadParams() (rocket.Params, error) {
	cfg, err := loadRocketConfig()
	if err != nil {
		return rocket.Params{}, err
	}
	return rocket.ParamsFromConfig(cfg), nil
}

// newLogger builds the process logger from --log-level and --log-file.
// Without a log file, interactive sessions discard logs and everything else
// logs to stderr.
func newLogger(prefix string, interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
