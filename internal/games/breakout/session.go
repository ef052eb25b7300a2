package breakout

import (
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Session scoring and lives.
const (
	StartLives  = 3
	BlockPoints = 10
)

// Session is the mutable aggregate of one play-through. It exclusively owns
// every entity; nothing removed from it survives the frame.
type Session struct {
	Paddle *Paddle
	Balls  []*Ball
	Blocks []*Block
	Score  int
	Lives  int
}

// NewSession lays out the board for the given screen and serves one ball
// from the screen center.
func NewSession(screenW, screenH float64, rng Rand) *Session {
	return &Session{
		Paddle: NewPaddle(screenW, screenH),
		Balls:  []*Ball{NewBall(core.V(screenW*0.5, screenH*0.5), rng)},
		Blocks: LayoutBlocks(screenW),
		Lives:  StartLives,
	}
}

// Step advances the session by one frame and returns what happened.
func (s *Session) Step(f core.Frame) []core.Event {
	var events []core.Event

	s.Paddle.Update(IntentFrom(f.Input), f.DT, f.ScreenW)

	for _, ball := range s.Balls {
		ball.Update(f.DT, f.ScreenW)
	}

	for _, ball := range s.Balls {
		Resolve(&ball.Rect, &ball.Vel, s.Paddle.Rect)
		for _, block := range s.Blocks {
			if !Resolve(&ball.Rect, &ball.Vel, block.Rect) {
				continue
			}
			destroyed := block.ApplyHit()
			if destroyed {
				s.Score += BlockPoints
			}
			events = append(events, s.event(core.EventBlockHit, block.Rect.Center()))
			if destroyed {
				events = append(events, s.event(core.EventBlockDestroyed, block.Rect.Center()))
			}
		}
	}

	wasLast := len(s.Balls) == 1
	var lost []*Ball
	s.Balls = slices.DeleteFunc(s.Balls, func(b *Ball) bool {
		if b.Rect.Y < f.ScreenH {
			return false
		}
		lost = append(lost, b)
		return true
	})
	lifeLost := len(lost) > 0 && wasLast
	if lifeLost {
		s.Lives--
	}
	for _, b := range lost {
		events = append(events, s.event(core.EventBallLost, b.Rect.Center()))
	}
	if lifeLost {
		events = append(events, s.event(core.EventLifeLost, s.Paddle.Rect.Center()))
	}

	s.Blocks = slices.DeleteFunc(s.Blocks, (*Block).Destroyed)

	return events
}

func (s *Session) event(kind core.EventKind, pos core.Vec2) core.Event {
	return core.Event{Kind: kind, Pos: pos, Score: s.Score, Lives: s.Lives}
}
