package rocket

// Integrate applies the flap and one tick of gravity to b.
//
// A flap replaces the velocity with FlapImpulse before gravity is added, so
// repeated flaps never stack. The second result is false when the updated
// body has left the screen vertically; touching an edge is still in bounds.
func Integrate(b Body, flap bool, p Params) (Body, bool) {
	if flap {
		b.Velocity = p.FlapImpulse
	}
	b.Velocity += p.Gravity
	b.Y += b.Velocity

	inBounds := b.Y >= 0 && b.Y <= p.ScreenHeight-p.BodySize
	return b, inBounds
}
