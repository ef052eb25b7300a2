package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BallSpeed scales the ball velocity, in units per second.
const BallSpeed = 400.0

// BallSize is the ball's width and height.
var BallSize = core.V(30, 30)

// Ball is a moving rectangle. Vel is a direction whose components are
// forced to ±1 by edge bounces, so its length may exceed 1; speed comes
// from BallSpeed.
type Ball struct {
	Rect core.Rect
	Vel  core.Vec2
}

// NewBall places a ball at pos heading toward increasing y with a random
// horizontal component.
func NewBall(pos core.Vec2, rng Rand) *Ball {
	return &Ball{
		Rect: core.RectAt(pos, BallSize),
		Vel:  core.V(rangeF(rng, -1, 1), 1).Normalize(),
	}
}

// Update advances the ball and bounces it off the left, right and top
// edges. Falling past the bottom is left to the session.
func (b *Ball) Update(dt, screenW float64) {
	b.Rect.X += b.Vel.X * dt * BallSpeed
	b.Rect.Y += b.Vel.Y * dt * BallSpeed

	if b.Rect.X > screenW-b.Rect.W {
		b.Vel.X = -1
	}
	if b.Rect.X < 0 {
		b.Vel.X = 1
	}
	if b.Rect.Y < 0 {
		b.Vel.Y = 1
	}
}
