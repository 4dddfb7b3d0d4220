package rocket

import (
	"fmt"
	"slices"
)

// Sim runs the tick pipeline for fixed Params.
// A Sim is not safe for concurrent use; one goroutine drives a run.
type Sim struct {
	params Params
	rng    Rand
}

// New creates a simulation. It fails if p violates the geometric invariants.
func New(p Params, rng Rand) (*Sim, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("rocket: invalid params: %w", err)
	}
	return &Sim{params: p, rng: rng}, nil
}

// Params returns the constants this simulation runs with.
func (s *Sim) Params() Params {
	return s.params
}

// SetRand replaces the gap placement source, e.g. to reseed between runs.
func (s *Sim) SetRand(rng Rand) {
	s.rng = rng
}

// StartRun returns the initial world. It is deterministic: calling it twice
// yields equal worlds.
func (s *Sim) StartRun() World {
	if err := s.params.Validate(); err != nil {
		panic(fmt.Sprintf("rocket: StartRun with invalid params: %v", err))
	}
	return World{
		Body: Body{X: s.params.BodyX, Y: s.params.BodyY},
	}
}

// Tick advances w by one frame. elapsed is the host's monotonic simulation
// clock in milliseconds and flap is the input snapshot for this frame.
//
// The returned world never shares obstacle storage with w, so a caller may
// discard it. A non-nil RunResult means the run ended on this tick; an
// out-of-bounds body ends the tick before obstacles move.
func (s *Sim) Tick(w World, flap bool, elapsed float64) (World, *RunResult) {
	next := w
	next.Obstacles = slices.Clone(w.Obstacles)
	next.Ticks++
	next.Elapsed = elapsed

	body, inBounds := Integrate(w.Body, flap, s.params)
	next.Body = body
	if !inBounds {
		return next, s.end(next, OutOfBounds)
	}

	next.Obstacles, next.NextSpawnAt = SpawnAndScroll(next.Obstacles, elapsed, w.NextSpawnAt, s.params, s.rng)

	passed, hit := Detect(next.Body, next.Obstacles, s.params)
	next.Score += passed
	if hit {
		return next, s.end(next, ObstacleCollision)
	}

	return next, nil
}

func (s *Sim) end(w World, reason EndReason) *RunResult {
	return &RunResult{
		FinalScore: w.Score,
		Reason:     reason,
		Ticks:      w.Ticks,
	}
}
