package rocket

// Detect scores and collision-tests body against every obstacle in order.
//
// An obstacle whose leading edge has slid left of the body's x is credited
// once and marked Passed in place. hit reports overlap with any barrier. All
// obstacles are still scored after a hit so that credit earned on the final
// tick is not lost.
func Detect(body Body, obstacles []Obstacle, p Params) (passed int, hit bool) {
	bodyBox := body.Box(p.BodySize)

	for i := range obstacles {
		o := &obstacles[i]

		if !o.Passed && o.X < body.X {
			o.Passed = true
			passed++
		}

		if hit {
			continue
		}
		if bodyBox.Intersects(o.TopBarrier(p)) || bodyBox.Intersects(o.BottomBarrier(p)) {
			hit = true
		}
	}

	return passed, hit
}
