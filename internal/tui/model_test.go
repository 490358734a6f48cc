package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"falling-sand/internal/app"
	"falling-sand/internal/sand"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 10, 8
	cfg.Scene = sand.SceneBasin
	s := app.NewSession(sand.NewWithConfig(cfg), sand.Brush{Radius: 1, Shape: sand.BrushSquare}, sand.Sand, nil)
	return NewModel(s, 60)
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Fatalf("quitting model should render nothing")
	}
}

func TestModelMaterialKey(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if got := m.session.Input().Material(); got != sand.Water {
		t.Fatalf("material = %s", got)
	}
}

func TestModelMousePaintsUntilRelease(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if got, _ := m.session.World().MaterialAt(sand.Point{X: 4, Y: 2}); got != sand.Sand {
		t.Fatalf("press painted %s at (4,2)", got)
	}
	if !m.primary {
		t.Fatalf("primary should be held")
	}
	next, _ = m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if m.primary {
		t.Fatalf("release should clear primary")
	}
}

func TestModelMouseOffGridIgnored(t *testing.T) {
	m := newTestModel(t)
	before := append([]uint8(nil), m.session.World().Cells()...)
	m.Update(tea.MouseMsg{X: 40, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for i, c := range m.session.World().Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed from off-grid click", i)
		}
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(100, 0)
	next, cmd := m.Update(TickMsg(start))
	if cmd == nil {
		t.Fatalf("tick should schedule the next tick")
	}
	m = next.(Model)
	next, _ = m.Update(TickMsg(start.Add(m.pacer.Interval())))
	m = next.(Model)
	if m.session.World().Tick() == 0 {
		t.Fatalf("world did not advance")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("view has %d lines, want 4 grid rows plus status", len(lines))
	}
	if !strings.Contains(lines[4], "sand") {
		t.Fatalf("status line %q missing material", lines[4])
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if !strings.Contains(m.View(), "PAUSED") {
		t.Fatalf("paused status missing")
	}
}

func TestModelKeyKeepsCursorVisible(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m = next.(Model)
	if _, ok := m.session.Cursor(); !ok {
		t.Fatalf("cursor hidden after motion onto the grid")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	m = next.(Model)
	c, ok := m.session.Cursor()
	if !ok || c.Center != (sand.Point{X: 5, Y: 2}) {
		t.Fatalf("cursor = %+v visible=%v after key press", c, ok)
	}
}
