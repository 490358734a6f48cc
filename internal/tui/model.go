package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sand"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	keyHelp     = "1-4 material  +/- brush  tab shape  space pause  n step  r reset  s reseed  q quit"
)

// Model is the Bubble Tea model driving a sand session in the terminal.
type Model struct {
	session  *app.Session
	renderer *Renderer
	pacer    *core.FixedStep

	cursor    sand.Point
	onGrid    bool
	primary   bool
	secondary bool

	quitting bool
}

// NewModel creates a model for s stepping at tps ticks per second.
func NewModel(s *app.Session, tps int) Model {
	return Model{
		session:  s,
		renderer: NewRenderer(s.World().Palette()),
		pacer:    core.NewFixedStep(tps),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pacer.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Handle(app.InputState{Keys: []string{msg.String()}, Cursor: m.cursor, OnGrid: m.onGrid}) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.cursor, m.onGrid = m.gridPoint(msg.X, msg.Y)
	in := app.InputState{Cursor: m.cursor, OnGrid: m.onGrid}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.primary = true
		case tea.MouseButtonRight:
			m.secondary = true
		case tea.MouseButtonMiddle:
			in.Middle = true
		case tea.MouseButtonWheelUp:
			in.Wheel = 1
		case tea.MouseButtonWheelDown:
			in.Wheel = -1
		}
	case tea.MouseActionRelease:
		m.primary, m.secondary = false, false
	}
	in.Primary, in.Secondary = m.primary, m.secondary
	m.session.Handle(in)
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.primary || m.secondary {
		m.session.Handle(app.InputState{
			Cursor:    m.cursor,
			OnGrid:    m.onGrid,
			Primary:   m.primary,
			Secondary: m.secondary,
		})
	}
	m.session.Advance(m.pacer.Advance(now))
	return m, tickCmd(m.pacer.Interval())
}

// gridPoint maps a terminal cell to the grid cell under it. Each terminal
// row covers two grid rows; the upper one is used.
func (m Model) gridPoint(col, row int) (sand.Point, bool) {
	size := m.session.World().Size()
	p := sand.Point{X: col, Y: row * 2}
	return p, p.X >= 0 && p.Y >= 0 && p.X < size.W && p.Y < size.H
}

// View renders the grid and a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.session.World()
	size := w.Size()
	var cursor *sand.Cursor
	if c, ok := m.session.Cursor(); ok {
		cursor = &c
	}
	var sb strings.Builder
	sb.WriteString(m.renderer.RenderGrid(w.Cells(), size.W, size.H, cursor))
	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m Model) statusLine() string {
	w := m.session.World()
	in := m.session.Input()
	brush := in.Brush()
	line := statusStyle.Render(fmt.Sprintf("%s  %s r=%d  tick %d  ", in.Material(), brush.Shape, brush.Radius, w.Tick()))
	if m.session.Paused() {
		line += pausedStyle.Render("PAUSED  ")
	}
	return line + statusStyle.Render(keyHelp)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(s *app.Session, tps int, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(s, tps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	if err == nil {
		logger.Info("terminal session ended", "ticks", s.World().Tick())
	}
	return err
}
