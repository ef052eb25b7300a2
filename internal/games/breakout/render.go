package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HUD placement, in world units.
const (
	hudBaseline = 40.0
	hudLivesX   = 30.0
	hudTextSize = 30.0
)

// Draw colors for entities other than blocks.
const (
	PaddleColor = core.ColorGreen
	BallColor   = core.ColorBrightWhite
	HUDColor    = core.ColorWhite
)

// Render draws the session: paddle, blocks by tier, balls, then the HUD.
func (s *Session) Render(r core.Renderer, font *core.Font, screenW float64) {
	r.Clear()

	r.DrawRect(s.Paddle.Rect, PaddleColor)
	for _, block := range s.Blocks {
		r.DrawRect(block.Rect, block.Tier().Color())
	}
	for _, ball := range s.Balls {
		r.DrawRect(ball.Rect, BallColor)
	}

	style := core.TextStyle{Font: font, Size: hudTextSize, Color: HUDColor}

	scoreText := fmt.Sprintf("score: %d", s.Score)
	dim := r.MeasureText(scoreText, font, hudTextSize)
	r.DrawText(scoreText, screenW*0.5-dim.X*0.5, hudBaseline, style)

	r.DrawText(fmt.Sprintf("lives: %d", s.Lives), hudLivesX, hudBaseline, style)
}
