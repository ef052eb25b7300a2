package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		View: ViewConfig{
			CellWidth:  10,
			CellHeight: 26,
		},
		Input: InputConfig{
			Hold:         150 * time.Millisecond,
			MaxFrameTime: 100 * time.Millisecond,
			Keys: KeyConfig{
				Left:  []string{"a", "left"},
				Right: []string{"d", "right"},
				Quit:  []string{"q", "ctrl+c"},
			},
		},
	}
}
