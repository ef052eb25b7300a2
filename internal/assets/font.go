// Package assets loads resources the host hands to the game at startup.
package assets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed fonts/hud.yaml
var defaultFontYAML []byte

// fontFile is the on-disk layout of a font face.
type fontFile struct {
	Name          string  `yaml:"name"`
	Italic        bool    `yaml:"italic"`
	Bold          bool    `yaml:"bold"`
	Underline     bool    `yaml:"underline"`
	Uppercase     bool    `yaml:"uppercase"`
	LetterSpacing int     `yaml:"letter_spacing"`
	BoldFrom      float64 `yaml:"bold_from"`
}

// LoadFont reads a font face from path. An empty path loads the embedded
// HUD face.
func LoadFont(path string) (*core.Font, error) {
	data := defaultFontYAML
	source := "embedded hud face"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: failed to read font %s: %w", path, err)
		}
		data, source = b, path
	}

	font, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to load font %s: %w", source, err)
	}
	return font, nil
}

// ParseFont decodes a font face from YAML.
func ParseFont(data []byte) (*core.Font, error) {
	var f fontFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Name == "" {
		return nil, fmt.Errorf("font has no name")
	}
	if f.LetterSpacing < 0 {
		return nil, fmt.Errorf("letter_spacing must not be negative, got %d", f.LetterSpacing)
	}

	var attr core.Attr
	if f.Italic {
		attr |= core.AttrItalic
	}
	if f.Bold {
		attr |= core.AttrBold
	}
	if f.Underline {
		attr |= core.AttrUnderline
	}

	return &core.Font{
		Name:          f.Name,
		Attr:          attr,
		Uppercase:     f.Uppercase,
		LetterSpacing: f.LetterSpacing,
		BoldFrom:      f.BoldFrom,
	}, nil
}
