package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapdragon/internal/core"
	"github.com/vovakirdan/flapdragon/internal/games/flappy"
)

// Model is the Bubble Tea model hosting one game.
type Model struct {
	state    *flappy.State
	screen   *core.Screen
	palette  *Palette
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	pending  core.Action // Most recent action since the last tick
	lastTick time.Time
	lastMode flappy.Mode
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil renderer uses the default one; a nil logger discards output.
func NewModel(state *flappy.State, cfg core.RuntimeConfig, renderer *lipgloss.Renderer, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := state.FieldSize()
	return Model{
		state:    state,
		screen:   core.NewScreen(w, h),
		palette:  NewPalette(renderer),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		config:   cfg,
		lastMode: state.Mode(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed float64
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	ctx := core.NewContext(m.pending, elapsed)
	m.pending = core.ActionNone
	m.state.Tick(ctx, m.screen)
	m.logTransition()

	if ctx.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// logTransition records mode changes and finished runs.
func (m *Model) logTransition() {
	mode := m.state.Mode()
	if mode == m.lastMode {
		return
	}

	m.logger.Debug("mode changed", "from", m.lastMode, "to", mode)
	if mode == flappy.ModeDead {
		m.logger.Info("run ended", "score", m.state.Score(), "distance", m.state.Player().X)
	}
	m.lastMode = mode
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".flapdragon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flapdragon_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

// View renders the last drawn frame plus the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true once the host loop is shutting down.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given game in the local terminal.
func Run(state *flappy.State, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(state, cfg, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
