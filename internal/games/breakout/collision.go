package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Resolve pushes moving out of static along the axis of shallower
// penetration and reflects vel on that axis. It reports whether the two
// overlapped. There is no sub-stepping, so a fast body can tunnel through a
// thin target in a single frame.
func Resolve(moving *core.Rect, vel *core.Vec2, static core.Rect) bool {
	overlap, ok := moving.Intersect(static)
	if !ok {
		return false
	}

	to := static.Center().Sub(moving.Center()).Sign()

	if overlap.W > overlap.H {
		// Top or bottom contact
		moving.Y -= to.Y * overlap.H
		if to.Y > 0 {
			vel.Y = -math.Abs(vel.Y)
		} else {
			vel.Y = math.Abs(vel.Y)
		}
		return true
	}

	// Side contact. A hit on the target's left face writes VY from |VX|
	// and leaves VX as it was.
	moving.X -= to.X * overlap.W
	if to.X < 0 {
		vel.X = math.Abs(vel.X)
	} else {
		vel.Y = -math.Abs(vel.X)
	}
	return true
}
