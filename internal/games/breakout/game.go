package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// GameID is the registry identifier for Breakout.
const GameID = "breakout"

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session *Session
	rng     *SimpleRNG
	runtime core.RuntimeConfig
	screenW float64 // Width seen by the most recent frame
	frames  uint64
}

// New creates a new Breakout game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset starts a fresh session sized to the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.session = NewSession(runtime.ScreenW, runtime.ScreenH, g.rng)
	g.screenW = runtime.ScreenW
	g.frames = 0
}

// Step advances the game by one frame.
func (g *Game) Step(f core.Frame) core.StepResult {
	g.frames++
	g.screenW = f.ScreenW
	events := g.session.Step(f)
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state.
func (g *Game) Render(dst core.Renderer) {
	g.session.Render(dst, g.runtime.Font, g.screenW)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.session.Score,
		Lives: g.session.Lives,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
