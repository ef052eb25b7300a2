// Package registry maps game IDs to factories. Games register themselves in
// init() so the host can instantiate them without importing them directly.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the interface a playable game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides the world size, RNG seed and HUD font.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one variable-length frame.
	// The frame carries held actions, elapsed seconds and the current
	// world size, which may change between frames.
	Step(f core.Frame) core.StepResult

	// Render draws the current game state through the renderer.
	Render(dst core.Renderer)

	// State returns the current game state (score, lives).
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry is a concurrency-safe set of game factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under id.
func (r *Registry) Register(id string, f Factory) error {
	if id == "" || f == nil {
		return fmt.Errorf("registry: invalid registration %q", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("registry: game %q already registered", id)
	}
	r.factories[id] = f
	return nil
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// IDs returns the registered IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.factories))
}

var defaultRegistry = New()

// Register adds a game factory to the default registry.
// Typically called from a game's init() function.
// Panics on an invalid or duplicate registration.
func Register(id string, f Factory) {
	if err := defaultRegistry.Register(id, f); err != nil {
		panic(err)
	}
}

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) {
	return defaultRegistry.Create(id)
}

// IDs lists the games in the default registry.
func IDs() []string {
	return defaultRegistry.IDs()
}
