package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// fixedRand always returns the same value, pinning the serve direction.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// frame builds an 800x600 frame with the given actions held.
func frame(dt float64, actions ...core.Action) core.Frame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return core.Frame{Input: in, DT: dt, ScreenW: 800, ScreenH: 600}
}
