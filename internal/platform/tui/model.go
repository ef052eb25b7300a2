package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// Options configures a Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Screen size is derived from the terminal; the rest is passed through
	Width   int                // Initial terminal width in cells
	Height  int                // Initial terminal height in cells
	Logger  *log.Logger
}

// Model is the Bubble Tea model that hosts a game.
type Model struct {
	game     registry.Game
	canvas   *core.Canvas
	keys     KeyMap
	held     *HeldKeys
	help     help.Model
	logger   *log.Logger
	now      func() time.Time
	interval time.Duration
	maxFrame time.Duration
	lastTick time.Time
	state    core.GameState
	quitting bool
}

// NewModel creates a model for game and resets the game to fit the
// initial terminal size.
func NewModel(game registry.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(max(opts.Width, 1), max(opts.Height-helpRows, 1))
	canvas := core.NewCanvas(screen, opts.Config.View.CellWidth, opts.Config.View.CellHeight)

	runtime := opts.Runtime
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	world := canvas.WorldSize()
	runtime.ScreenW, runtime.ScreenH = world.X, world.Y
	runtime.TickRate = opts.Config.TickRate

	game.Reset(runtime)
	logger.Info("game started",
		"game", game.ID(),
		"seed", runtime.Seed,
		"cells", fmt.Sprintf("%dx%d", screen.Width(), screen.Height()),
		"world", fmt.Sprintf("%gx%g", world.X, world.Y),
	)

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:     game,
		canvas:   canvas,
		keys:     NewKeyMap(opts.Config.Input.Keys),
		held:     NewHeldKeys(opts.Config.Input.Hold),
		help:     h,
		logger:   logger,
		now:      time.Now,
		interval: opts.Config.TickInterval(),
		maxFrame: opts.Config.Input.MaxFrameTime,
		state:    game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Key releases are never reported after focus is lost.
		m.held.Reset()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "lives", m.state.Lives)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.now())
	}
	return m, nil
}

// handleResize adapts the playfield to the new terminal size. The session
// keeps running; entities see the new world size on the next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.canvas.Screen().Resize(max(msg.Width, 1), max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width

	world := m.canvas.WorldSize()
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "world_w", world.X, "world_h", world.Y)
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameTime(m.lastTick, now, m.maxFrame)
	m.lastTick = now

	world := m.canvas.WorldSize()
	result := m.game.Step(core.Frame{
		Input:   m.held.Frame(now),
		DT:      dt.Seconds(),
		ScreenW: world.X,
		ScreenH: world.Y,
	})
	m.state = result.State
	m.logEvents(result.Events)

	return m, tickCmd(m.interval)
}

// logEvents reports gameplay events. Losing a life is worth a line at info
// level; everything else is debug noise.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		kv := []any{"x", e.Pos.X, "y", e.Pos.Y, "score", e.Score, "lives", e.Lives}
		if e.Kind == core.EventLifeLost {
			m.logger.Info(e.Kind.String(), kv...)
			continue
		}
		m.logger.Debug(e.Kind.String(), kv...)
	}
}

// State returns the most recent game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	return RenderScreen(m.canvas.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the final game state.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
