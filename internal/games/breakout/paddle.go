package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PlayerSpeed is the paddle's horizontal speed in units per second.
const PlayerSpeed = 700.0

// PlayerSize is the paddle's width and height.
var PlayerSize = core.V(150, 40)

// paddleBottomOffset is the distance from the screen bottom to the paddle top.
const paddleBottomOffset = 100.0

// Intent is the horizontal movement the player asks for this frame.
type Intent struct {
	Left  bool
	Right bool
}

// IntentFrom reads the paddle intent out of an input frame.
func IntentFrom(in core.InputFrame) Intent {
	return Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// Paddle is the player-controlled rectangle along the bottom of the board.
type Paddle struct {
	Rect core.Rect
}

// NewPaddle centers a paddle horizontally near the bottom of the screen.
func NewPaddle(screenW, screenH float64) *Paddle {
	return &Paddle{
		Rect: core.NewRect(
			screenW*0.5-PlayerSize.X*0.5,
			screenH-paddleBottomOffset,
			PlayerSize.X,
			PlayerSize.Y,
		),
	}
}

// Update moves the paddle by the held direction and keeps it on screen.
// screenW is passed every frame because the window may have been resized.
func (p *Paddle) Update(in Intent, dt, screenW float64) {
	move := 0.0
	if in.Left {
		move--
	}
	if in.Right {
		move++
	}
	p.Rect.X = core.ClampF(p.Rect.X+move*dt*PlayerSpeed, 0, screenW-p.Rect.W)
}
