package viz

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/slopefield/internal/euler"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

type TickMsg time.Time

// Model steps an Euler run one record per frame and graphs the solution
// as it accumulates.
type Model struct {
	f         euler.Func
	source    string
	step      float64
	xEnd      float64
	precision int

	x, y    float64
	history []euler.Step
	running bool
	done    bool
	err     error
}

// NewModel prepares a live run with rounded initial state, mirroring the
// batch stepper's entry rounding.
func NewModel(f euler.Func, source string, step, x0, y0, xEnd float64, precision int) Model {
	return Model{
		f:         f,
		source:    source,
		step:      euler.Round(step, precision),
		xEnd:      xEnd,
		precision: precision,
		x:         euler.Round(x0, precision),
		y:         euler.Round(y0, precision),
		history:   make([]euler.Step, 0, 256),
		running:   true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.done && m.err == nil {
				m.running = !m.running
			}
		case "r":
			if len(m.history) > 0 {
				first := m.history[0]
				m.x, m.y = first.X, first.Y
			}
			m.history = m.history[:0]
			m.done = false
			m.err = nil
			m.running = true
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done && m.err == nil {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

// advance performs one table iteration: evaluate, record, move.
func (m *Model) advance() {
	if (m.step > 0 && m.x > m.xEnd) || (m.step < 0 && m.x < m.xEnd) {
		m.done = true
		m.running = false
		return
	}
	yp, err := m.f(m.x, m.y)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	yp = euler.Round(yp, m.precision)
	dy := euler.Round(yp*m.step, m.precision)
	m.history = append(m.history, euler.Step{X: m.x, Y: m.y, YP: yp, DY: dy})
	m.x = euler.Round(m.x+m.step, m.precision)
	m.y = euler.Round(m.y+dy, m.precision)
}

func (m Model) View() string {
	s := headerStyle.Render(fmt.Sprintf("y' = %s", m.source)) + "\n"

	if len(m.history) > 1 {
		data := make([]float64, len(m.history))
		for i, st := range m.history {
			data[i] = st.Y
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
		)
		s += graphStyle.Render(graph) + "\n"
	}

	fv := func(v float64) string { return strconv.FormatFloat(v, 'f', m.precision, 64) }
	s += labelStyle.Render("x") + valueStyle.Render(fv(m.x)) + "\n"
	s += labelStyle.Render("y") + valueStyle.Render(fv(m.y)) + "\n"
	s += labelStyle.Render("records") + valueStyle.Render(strconv.Itoa(len(m.history))) + "\n"

	switch {
	case m.err != nil:
		s += doneStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	case m.done:
		s += doneStyle.Render("reached x_end") + "\n"
	case !m.running:
		s += doneStyle.Render("paused") + "\n"
	}

	s += helpStyle.Render("space pause · r reset · q quit")
	return s
}
