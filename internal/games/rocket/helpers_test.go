package rocket

import "testing"

// fixedRand returns vals in order, repeating the last one.
type fixedRand struct {
	vals  []float64
	calls int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[min(r.calls, len(r.vals)-1)]
	r.calls++
	return v
}

func newFixedRand(vals ...float64) *fixedRand {
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	return &fixedRand{vals: vals}
}

// noSpawn is a NextSpawnAt far beyond any clock a test uses.
const noSpawn = 1e12

func mustSim(t testing.TB, p Params, rng Rand) *Sim {
	t.Helper()
	s, err := New(p, rng)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}
