package rocket

import "testing"

func TestSpawnOncePerPeriod(t *testing.T) {
	p := DefaultParams()
	rng := newFixedRand()

	var obstacles []Obstacle
	next := 0.0
	frame := 1000.0 / 60.0
	for i := 1; i < 360; i++ { // just under 6000ms
		obstacles, next = SpawnAndScroll(obstacles, float64(i)*frame, next, p, rng)
	}

	// Boundaries at 0, 2000 and 4000.
	if rng.calls != 3 {
		t.Errorf("spawned %d obstacles, expected 3", rng.calls)
	}
	if next != 6000 {
		t.Errorf("next spawn = %v, expected 6000", next)
	}
}

func TestSpawnCoarseTickSpawnsOnce(t *testing.T) {
	p := DefaultParams()
	rng := newFixedRand()

	obstacles, next := SpawnAndScroll(nil, 7000, 0, p, rng)
	if len(obstacles) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(obstacles))
	}
	if next != 8000 {
		t.Errorf("next spawn = %v, expected 8000", next)
	}

	obstacles, _ = SpawnAndScroll(obstacles, 7016, next, p, rng)
	if len(obstacles) != 1 {
		t.Errorf("no spawn expected before the next boundary, got %d obstacles", len(obstacles))
	}
}

func TestSpawnPlacement(t *testing.T) {
	p := DefaultParams()
	lo := p.MarginTop
	hi := p.ScreenHeight - p.GapSize - p.MarginBottom

	tests := []struct {
		name string
		r    float64
		want float64
	}{
		{"lowest draw", 0, lo},
		{"middle draw", 0.5, lo + (hi-lo)/2},
		{"highest draw", 0.999, lo + 0.999*(hi-lo)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obstacles, _ := SpawnAndScroll(nil, 0, 0, p, newFixedRand(tc.r))
			o := obstacles[0]
			if o.GapTop != tc.want {
				t.Errorf("GapTop = %v, expected %v", o.GapTop, tc.want)
			}
			if o.GapTop < lo || o.GapTop+p.GapSize > p.ScreenHeight-p.MarginBottom {
				t.Errorf("gap [%v, %v] leaves the allowed band", o.GapTop, o.GapTop+p.GapSize)
			}
			if o.X != p.ScreenWidth-p.ScrollSpeed {
				t.Errorf("new obstacle x = %v, expected right edge minus one scroll step", o.X)
			}
			if o.Passed {
				t.Error("new obstacle should not be passed")
			}
		})
	}
}

func TestScrollAndPrune(t *testing.T) {
	p := DefaultParams()
	p.ScrollSpeed = 3

	obstacles := []Obstacle{
		{X: 500, GapTop: 100},
		{X: -57, GapTop: 120},   // lands on x+width == 0, kept
		{X: -57.5, GapTop: 140}, // lands just past the edge, removed
		{X: 10, GapTop: 160, Passed: true},
	}

	got, _ := SpawnAndScroll(obstacles, 10, noSpawn, p, newFixedRand())

	want := []Obstacle{
		{X: 497, GapTop: 100},
		{X: -60, GapTop: 120},
		{X: 7, GapTop: 160, Passed: true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d obstacles, expected %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("obstacle %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestPrunedObstaclesNeverReturn(t *testing.T) {
	p := DefaultParams()
	s := mustSim(t, p, newFixedRand(0.5))

	w := s.StartRun()
	w.Obstacles = []Obstacle{{X: -50, GapTop: 200}}
	w.NextSpawnAt = noSpawn

	for i := 1; i <= 10; i++ {
		w, _ = s.Tick(w, i%2 == 0, float64(i))
		for _, o := range w.Obstacles {
			if o.X+p.ObstacleWidth < 0 {
				t.Fatalf("tick %d: off-screen obstacle still present: %+v", i, o)
			}
		}
	}
	if len(w.Obstacles) != 0 {
		t.Errorf("expected the obstacle to be pruned, got %+v", w.Obstacles)
	}
}
