package rocket

import "math"

// Rand is the random source used for gap placement.
// *math/rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// SpawnAndScroll runs the obstacle stage for one tick.
//
// When elapsed has reached nextSpawnAt a single obstacle is appended at the
// right edge and the next boundary is moved past elapsed, so a coarse tick
// that skips several boundaries still spawns only once. Every obstacle then
// moves left by ScrollSpeed and those whose right edge is left of x=0 are
// dropped. obstacles is modified in place; use the returned slice.
func SpawnAndScroll(obstacles []Obstacle, elapsed, nextSpawnAt float64, p Params, rng Rand) ([]Obstacle, float64) {
	if elapsed >= nextSpawnAt {
		obstacles = append(obstacles, spawnObstacle(p, rng))
		nextSpawnAt = (math.Floor(elapsed/p.SpawnPeriod) + 1) * p.SpawnPeriod
	}

	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= p.ScrollSpeed
		if o.X+p.ObstacleWidth < 0 {
			continue
		}
		kept = append(kept, o)
	}

	return kept, nextSpawnAt
}

// spawnObstacle places a gap uniformly in
// [MarginTop, ScreenHeight-GapSize-MarginBottom].
func spawnObstacle(p Params, rng Rand) Obstacle {
	lo := p.MarginTop
	hi := p.ScreenHeight - p.GapSize - p.MarginBottom

	gapTop := lo
	if hi > lo {
		gapTop = lo + rng.Float64()*(hi-lo)
	}

	return Obstacle{
		X:      p.ScreenWidth,
		GapTop: gapTop,
	}
}
