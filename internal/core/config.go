package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  float64 // Drawable width in world units
	ScreenH  float64 // Drawable height in world units
	TickRate int     // Frames per second requested from the host (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Font     *Font   // HUD text face loaded at startup
}

// Frame is the read-only snapshot a game consumes once per frame.
// The host fills it at the start of the frame; screen dimensions may differ
// from the previous frame when the window was resized.
type Frame struct {
	Input   InputFrame
	DT      float64 // Seconds since the previous frame
	ScreenW float64
	ScreenH float64
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int // Current score
	Lives int // Remaining lives
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
