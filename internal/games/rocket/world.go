// Package rocket implements Flappy Rocket: a rocket falls under gravity, is
// flapped upward on input and must thread a stream of gapped obstacles.
//
// The simulation is a pure function over World values (see Sim.Tick) split
// into three stages that run in order every tick: Integrate, SpawnAndScroll
// and Detect. Game adapts the simulation to the arcade platform.
package rocket

import "github.com/vovakirdan/rocket-arcade/internal/core"

// Body is the player-controlled rocket. X never changes during a run.
type Body struct {
	X, Y     float64
	Velocity float64 // positive is downward
}

// Box returns the body's hitbox.
func (b Body) Box(size float64) core.Box {
	return core.NewBox(b.X, b.Y, size, size)
}

// Obstacle is a top/bottom barrier pair with a passable gap.
type Obstacle struct {
	X      float64 // leading (left) edge
	GapTop float64 // y where the gap begins
	Passed bool    // score already credited
}

// TopBarrier spans [0, GapTop] vertically.
func (o Obstacle) TopBarrier(p Params) core.Box {
	return core.NewBox(o.X, 0, p.ObstacleWidth, o.GapTop)
}

// BottomBarrier spans [GapTop+GapSize, ScreenHeight] vertically.
func (o Obstacle) BottomBarrier(p Params) core.Box {
	bottomY := o.GapTop + p.GapSize
	return core.NewBox(o.X, bottomY, p.ObstacleWidth, p.ScreenHeight-bottomY)
}

// World is the complete state of a run.
type World struct {
	Body      Body
	Obstacles []Obstacle // spawn order
	Score     int
	Ticks     int
	Elapsed   float64 // simulation clock in milliseconds

	// NextSpawnAt is the next spawn period boundary on the simulation clock.
	NextSpawnAt float64
}

// EndReason says why a run ended.
type EndReason int

const (
	OutOfBounds EndReason = iota + 1
	ObstacleCollision
)

// String returns a human-readable reason.
func (r EndReason) String() string {
	switch r {
	case OutOfBounds:
		return "out of bounds"
	case ObstacleCollision:
		return "obstacle collision"
	default:
		return "unknown"
	}
}

// RunResult is the terminal outcome of a run.
type RunResult struct {
	FinalScore int
	Reason     EndReason
	Ticks      int
}
