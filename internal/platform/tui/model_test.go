package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapdragon/internal/config"
	"github.com/vovakirdan/flapdragon/internal/core"
	"github.com/vovakirdan/flapdragon/internal/games/flappy"
)

func newTestModel() (Model, *flappy.State) {
	state := flappy.New(config.Default(), rand.New(rand.NewSource(1)))
	m := NewModel(state, core.RuntimeConfig{TickRate: 30}, plainPalette().renderer, nil)
	return m, state
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsGameFromMenu(t *testing.T) {
	m, state := newTestModel()
	start := time.Now()

	m, _ = update(t, m, TickMsg(start))
	if !strings.Contains(m.View(), "Welcome to Flap Dragon") {
		t.Error("first frame should show the menu")
	}

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg(start.Add(33*time.Millisecond)))

	if state.Mode() != flappy.ModePlaying {
		t.Fatalf("mode = %v, expected playing", state.Mode())
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("tick should schedule the next tick")
	}

	// The action is consumed by the tick
	if m.pending != core.ActionNone {
		t.Errorf("pending = %v, expected none after a tick", m.pending)
	}
}

func TestModelElapsedDrivesPhysics(t *testing.T) {
	m, state := newTestModel()
	start := time.Now()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(start))

	// 50ms is below the step threshold
	m, _ = update(t, m, TickMsg(start.Add(50*time.Millisecond)))
	if state.Player().X != 5 {
		t.Fatalf("X = %d after 50ms, expected no physics step", state.Player().X)
	}

	// 50ms more crosses it
	_, _ = update(t, m, TickMsg(start.Add(100*time.Millisecond)))
	if state.Player().X != 6 {
		t.Errorf("X = %d after 100ms, expected one physics step", state.Player().X)
	}
}

func TestModelFlap(t *testing.T) {
	m, state := newTestModel()
	start := time.Now()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	_, _ = update(t, m, TickMsg(start.Add(10*time.Millisecond)))

	if state.Player().Velocity != -2.0 {
		t.Errorf("velocity = %f, expected -2.0 after flap", state.Player().Velocity)
	}
}

func TestModelLatestKeyWins(t *testing.T) {
	m, state := newTestModel()

	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, runeKey('x')) // unused keys do not clear the pending action
	_, _ = update(t, m, TickMsg(time.Now()))

	if state.Mode() != flappy.ModePlaying {
		t.Errorf("mode = %v, expected the last mapped key (play) to apply", state.Mode())
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := update(t, m, runeKey('q'))
	if isQuit(cmd) {
		t.Fatal("q should be handled by the game on the next tick, not immediately")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("q in the menu should quit the program")
	}
	if !m.IsQuitting() {
		t.Error("model should report quitting")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelQIgnoredWhilePlaying(t *testing.T) {
	m, state := newTestModel()
	start := time.Now()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg(start.Add(10*time.Millisecond)))

	if isQuit(cmd) || m.IsQuitting() {
		t.Error("q should not quit while playing")
	}
	if state.Mode() != flappy.ModePlaying {
		t.Errorf("mode = %v, expected playing", state.Mode())
	}
}

func TestModelForceQuit(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
	if !m.IsQuitting() {
		t.Error("model should report quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m, _ := newTestModel()
	m, _ = update(t, m, TickMsg(time.Now()))

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if !strings.HasPrefix(path, home) {
		t.Errorf("screenshot path %q should be under %q", path, home)
	}
}
