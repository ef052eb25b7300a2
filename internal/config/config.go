// Package config provides YAML-based configuration for the terminal host:
// frame rate, cell geometry, key bindings and the HUD font.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all host configuration. Gameplay constants are fixed in
// the game package and are not configurable.
type Config struct {
	TickRate int         `yaml:"tick_rate"` // Frames per second
	View     ViewConfig  `yaml:"view"`
	Input    InputConfig `yaml:"input"`
	Font     string      `yaml:"font"` // Path to a font face; empty uses the embedded face
}

// ViewConfig maps world units onto terminal cells.
type ViewConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
}

// InputConfig defines key bindings and timing of held keys.
type InputConfig struct {
	// Hold is how long a key counts as held after its last press or repeat.
	Hold time.Duration `yaml:"hold"`
	// MaxFrameTime caps the elapsed time fed to a single frame.
	MaxFrameTime time.Duration `yaml:"max_frame_time"`
	Keys         KeyConfig     `yaml:"keys"`
}

// KeyConfig lists the key names bound to each action.
type KeyConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	case c.View.CellWidth <= 0 || c.View.CellHeight <= 0:
		return fmt.Errorf("config: cell size must be positive, got %vx%v", c.View.CellWidth, c.View.CellHeight)
	case c.Input.Hold <= 0:
		return errors.New("config: input.hold must be positive")
	case c.Input.MaxFrameTime <= 0:
		return errors.New("config: input.max_frame_time must be positive")
	case len(c.Input.Keys.Quit) == 0:
		return errors.New("config: at least one quit key is required")
	}
	return nil
}

// TickInterval returns the time between frames.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// MarshalYAML writes durations in Go duration syntax ("150ms") instead of
// nanosecond counts.
func (c InputConfig) MarshalYAML() (any, error) {
	return struct {
		Hold         string    `yaml:"hold"`
		MaxFrameTime string    `yaml:"max_frame_time"`
		Keys         KeyConfig `yaml:"keys"`
	}{c.Hold.String(), c.MaxFrameTime.String(), c.Keys}, nil
}
