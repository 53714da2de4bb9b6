package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/solvers"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// LiveModel steps an ODE problem in real time and streams the trajectory as
// a terminal chart.
type LiveModel struct {
	prob    deq.ODEProblem
	stepper solvers.Stepper
	name    string

	y       deq.State
	t       float64
	dt      float64
	fps     int
	running bool

	history [][]float64
}

func NewLiveModel(name string, prob deq.ODEProblem, st solvers.Stepper, dt float64, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	n := len(prob.Y0)
	if n > 3 {
		n = 3
	}
	return LiveModel{
		prob:    prob,
		stepper: st,
		name:    name,
		y:       prob.Y0.Clone(),
		t:       prob.Tspan[0],
		dt:      dt,
		fps:     fps,
		running: true,
		history: make([][]float64, n),
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.y = m.prob.Y0.Clone()
			m.t = m.prob.Tspan[0]
			for i := range m.history {
				m.history[i] = nil
			}
		}
		return m, nil

	case TickMsg:
		if m.running && m.t < m.prob.Tspan[1] {
			// A few substeps per frame keeps the trace smooth at low fps.
			for k := 0; k < 4 && m.t < m.prob.Tspan[1]; k++ {
				m.y = m.stepper.Step(m.prob.F, m.y, m.prob.Params, m.t, m.dt)
				m.t += m.dt
			}
			for i := range m.history {
				m.history[i] = append(m.history[i], m.y[i])
				if len(m.history[i]) > historyCapacity {
					m.history[i] = m.history[i][1:]
				}
			}
			if !m.y.IsValid() {
				m.running = false
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m LiveModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("live: %s", m.name)))
	b.WriteString("\n")

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.3f", m.t)) + "\n")
	b.WriteString(labelStyle.Render("status") + valueStyle.Render(status) + "\n")
	for i := range m.history {
		b.WriteString(labelStyle.Render(fmt.Sprintf("y%d", i)) + valueStyle.Render(fmt.Sprintf("%.6f", m.y[i])) + "\n")
	}

	if len(m.history) > 0 && len(m.history[0]) > 1 {
		graph := asciigraph.Plot(m.history[0],
			asciigraph.Height(12),
			asciigraph.Width(78),
			asciigraph.Caption("y0"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return b.String()
}
