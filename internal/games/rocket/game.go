package rocket

import (
	"math/rand"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Game adapts Sim to the arcade platform: it owns the current World, turns
// input frames into flap snapshots and advances the simulation clock by one
// frame duration per step.
type Game struct {
	sim    *Sim
	world  World
	result *RunResult
	paused bool
	config core.RuntimeConfig
}

// NewGame creates a game for the given params.
func NewGame(p Params) (*Game, error) {
	sim, err := New(p, rand.New(rand.NewSource(1)))
	if err != nil {
		return nil, err
	}
	return &Game{sim: sim, config: core.DefaultConfig()}, nil
}

// ID returns the identifier used in screenshot file names.
func (g *Game) ID() string {
	return "rocket"
}

// Reset starts a fresh run. The seed in cfg drives gap placement.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.sim.SetRand(rand.New(rand.NewSource(cfg.Seed)))
	g.world = g.sim.StartRun()
	g.result = nil
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.result != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	elapsed := g.world.Elapsed + g.config.FrameMillis()
	world, result := g.sim.Tick(g.world, in.Has(core.ActionFlap), elapsed)
	g.world = world

	if result != nil {
		g.result = result
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current world into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.world, g.sim.Params())

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.result != nil,
		Paused:   g.paused,
	}
}

// Result returns the terminal outcome, or nil while the run is live.
func (g *Game) Result() *RunResult {
	return g.result
}

// World returns the current world.
func (g *Game) World() World {
	return g.world
}

// Params returns the run constants.
func (g *Game) Params() Params {
	return g.sim.Params()
}
