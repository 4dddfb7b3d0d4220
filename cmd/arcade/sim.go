package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	flagSimTicks     int
	flagSimFlapEvery int
	flagSimRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Drive the simulation without a terminal UI and print the outcome.

The input is scripted: the rocket flaps on every Kth tick (0 = never).
With a fixed --seed the outcome is fully reproducible.

Examples:
  arcade sim
  arcade sim --ticks 3600 --flap-every 18 --seed 42
  arcade sim --difficulty hard --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Maximum number of ticks to run")
	simCmd.Flags().IntVar(&flagSimFlapEvery, "flap-every", 0, "Flap on every Kth tick (0 = never)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record a finished run in the scores database")
}

// simulate runs up to maxTicks ticks, flapping on every flapEvery-th tick
// starting with the first, and advancing the clock frameMs per tick.
func simulate(sim *rocket.Sim, maxTicks, flapEvery int, frameMs float64) (rocket.World, *rocket.RunResult) {
	w := sim.StartRun()
	for i := 0; i < maxTicks; i++ {
		flap := flapEvery > 0 && i%flapEvery == 0
		var res *rocket.RunResult
		w, res = sim.Tick(w, flap, w.Elapsed+frameMs)
		if res != nil {
			return w, res
		}
	}
	return w, nil
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive")
	}
	if flagSimFlapEvery < 0 {
		return fmt.Errorf("--flap-every must not be negative")
	}

	params, err := loadParams()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("rocket-sim", false)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := rocket.New(params, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{TickRate: flagFPS}
	frameMs := rc.FrameMillis()
	w, res := simulate(sim, flagSimTicks, flagSimFlapEvery, frameMs)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:      %d\n", seed)
	fmt.Fprintf(out, "Ticks:     %d (%.2fs simulated)\n", w.Ticks, w.Elapsed/1000)
	fmt.Fprintf(out, "Score:     %d\n", w.Score)
	fmt.Fprintf(out, "Obstacles: %d on screen\n", len(w.Obstacles))
	if res == nil {
		fmt.Fprintln(out, "Outcome:   still flying")
		logger.Debug("simulation finished without ending", "ticks", w.Ticks, "score", w.Score)
		return nil
	}
	fmt.Fprintf(out, "Outcome:   %s\n", res.Reason)
	logger.Debug("simulation ended", "reason", res.Reason, "ticks", res.Ticks, "score", res.FinalScore)

	if flagSimRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.RecordRun(res.FinalScore, res.Reason.String(), res.Ticks)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded:  %s\n", id)
		logger.Info("run recorded", "run", id, "score", res.FinalScore)
	}
	return nil
}
