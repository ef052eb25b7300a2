package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := NewKeyMap(config.Default().Input.Keys)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	keys := NewKeyMap(config.KeyConfig{
		Left:  []string{"j"},
		Right: []string{"l"},
		Quit:  []string{"esc"},
	})

	if got := keys.Action(runeKey('j')); got != core.ActionLeft {
		t.Errorf("Action(j) = %v, expected %v", got, core.ActionLeft)
	}
	if got := keys.Action(runeKey('a')); got != core.ActionNone {
		t.Errorf("Action(a) = %v, expected %v", got, core.ActionNone)
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeyEsc}); got != core.ActionQuit {
		t.Errorf("Action(esc) = %v, expected %v", got, core.ActionQuit)
	}
	if h := keys.Left.Help(); h.Key != "j" || h.Desc != "left" {
		t.Errorf("Left.Help() = %+v, expected j/left", h)
	}
}

func TestHeldKeysWindow(t *testing.T) {
	t0 := time.Unix(1000, 0)
	held := NewHeldKeys(150 * time.Millisecond)

	held.Press(core.ActionLeft, t0)

	if !held.Frame(t0.Add(100 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("Left should be held inside the window")
	}

	// A repeat extends the window.
	held.Press(core.ActionLeft, t0.Add(120*time.Millisecond))
	if !held.Frame(t0.Add(200 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("Left should still be held after a repeat")
	}

	if held.Frame(t0.Add(270 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("Left should be released once the window has passed")
	}
	if len(held.last) != 0 {
		t.Errorf("expired presses should be forgotten, have %d", len(held.last))
	}
}

func TestHeldKeysOppositeDirection(t *testing.T) {
	t0 := time.Unix(1000, 0)
	held := NewHeldKeys(time.Second)

	held.Press(core.ActionLeft, t0)
	held.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := held.Frame(t0.Add(20 * time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}

	held.Reset()
	if held.Frame(t0.Add(30 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("Reset should release everything")
	}
}
