package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/expansim/internal/control"
	"github.com/san-kum/expansim/internal/cosmos"
	"github.com/san-kum/expansim/internal/store"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives the live view: one frame loop that polls keys into the
// control surface, advances the engine while unpaused, and renders the
// current store view.
type Model struct {
	store     *store.Store
	engine    *cosmos.Engine
	surface   *control.Surface
	dt        float64
	frameRate int

	canvas    *Canvas
	baseScale float64
	zoom      float64
	history   []float64

	lastSave string
	lastErr  string
	showHelp bool
}

func NewModel(st *store.Store, eng *cosmos.Engine, surface *control.Surface, dt float64, frameRate int) Model {
	// Fit the initial field into ~90% of the canvas; zoom is relative
	// to that fit.
	half := float64(height*4) / 2 * 0.9
	baseScale := 1.0
	if r := st.View().Radius(); r > 0 {
		baseScale = half / r
	}

	return Model{
		store:     st,
		engine:    eng,
		surface:   surface,
		dt:        dt,
		frameRate: frameRate,
		canvas:    NewCanvas(width, height),
		baseScale: baseScale,
		zoom:      1.0,
		history:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if res := m.surface.Handle(control.Quit); res.Quit {
				return m, tea.Quit
			}
		case " ":
			m.surface.Handle(control.TogglePause)
		case "+", "=":
			m.surface.Handle(control.DotSizeUp)
		case "-", "_":
			m.surface.Handle(control.DotSizeDown)
		case "s":
			res := m.surface.Handle(control.Save)
			if res.Err != nil {
				m.lastErr = res.Err.Error()
			} else {
				m.lastSave = res.SnapshotPath
				m.lastErr = ""
			}
		case "up", "k":
			m.zoom *= 1.25
		case "down", "j":
			m.zoom /= 1.25
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if !m.store.Paused() {
			next, err := m.engine.Advance(m.store.View(), m.dt)
			if err != nil {
				// Keep the prior state; the loop continues.
				m.lastErr = err.Error()
			} else {
				m.store.Apply(next)
			}
		}
		m.history = append(m.history, m.store.View().ScaleFactor)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the canvas and stats sidebar.
func (m Model) View() string {
	view := m.store.View()
	m.draw(view)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("EXPANSIM") + "\n")
	if view.Paused {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("scale factor"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", view.Elapsed)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", view.Steps)) + "\n")
	s.WriteString(labelStyle.Render("Scale") + valueStyle.Render(fmt.Sprintf("%.4f", view.ScaleFactor)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", len(view.Particles))) + "\n")
	s.WriteString(labelStyle.Render("Dot size") + valueStyle.Render(fmt.Sprintf("%d", m.surface.DotSize())) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", m.zoom)) + "\n")

	if m.lastErr != "" {
		s.WriteString("\n" + errorStyle.Render(m.lastErr) + "\n")
	} else if m.lastSave != "" {
		s.WriteString("\n" + labelStyle.Render("Saved") + valueStyle.Render(m.lastSave) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause  +/-:Dot  ↑↓:Zoom\nS:Save  Q:Quit  ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  + / -    - Dot size up/down         ║
║  Up/K     - Zoom in                  ║
║  Down/J   - Zoom out                 ║
║  S        - Save snapshot            ║
║  Q / Esc  - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// draw projects the particle field onto the canvas about its center.
func (m *Model) draw(view cosmos.State) {
	m.canvas.Clear()
	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	scale := m.baseScale * m.zoom
	radius := m.surface.DotSize()

	for _, p := range view.Particles {
		sx := cw/2 + int(p.X*scale)
		sy := ch/2 - int(p.Y*scale)
		m.canvas.Dot(sx, sy, radius)
	}
}
