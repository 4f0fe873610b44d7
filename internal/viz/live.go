package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/constraint"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vecmath"
	"github.com/san-kum/kinetic/internal/world"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	historyLimit = 600
	trailLimit   = 120
	chartWindow  = 120
	maxDotRadius = 24
)

// TickMsg drives the simulation clock at the render rate.
type TickMsg time.Time

// Builder constructs a fresh world from a configuration. The model owns
// the worlds it builds, so reset is a rebuild rather than a rewind.
type Builder func(cfg engine.Config) *world.World

// Model is the interactive viewer for one scene. Awake bodies render as
// filled discs, resting ones as outlines; recent frames are kept for
// replay scrubbing.
type Model struct {
	name  string
	build Builder
	cfg   engine.Config

	w      *world.World
	boxWf  *Wireframe
	canvas *Canvas
	cam    *Camera

	trails     [][]vecmath.Vec3
	history    []engine.Frame
	playHead   int
	energyHist []float64

	running  bool
	showHelp bool
	err      error
}

func NewModel(name string, build Builder, cfg engine.Config) Model {
	m := Model{
		name:     name,
		build:    build,
		cfg:      cfg,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		cam:      NewCamera(),
		playHead: -1,
		running:  true,
	}
	m.attach(build(cfg))
	return m
}

// attach points the model at a fresh world and fits the camera to it.
func (m *Model) attach(w *world.World) {
	m.w = w
	m.err = nil
	m.trails = make([][]vecmath.Vec3, len(w.Bodies()))
	m.history = m.history[:0]
	m.energyHist = m.energyHist[:0]
	m.playHead = -1

	m.boxWf = nil
	for _, c := range w.Constraints() {
		walls, ok := c.(*constraint.Walls)
		if !ok {
			continue
		}
		bw, bh, bd := walls.Size()
		m.boxWf = BoxWireframe(bw, bh, bd)
		span := bw
		if bh > span {
			span = bh
		}
		if bd > span {
			span = bd
		}
		m.cam.Span = span * 1.4
		m.cam.Distance = span * 2
		break
	}
	if m.boxWf == nil {
		m.cam.Span, m.cam.Distance = fitSpan(w.Bodies())
	}
	m.cam.SnapTo(centroid(w.Bodies()))
}

// fitSpan sizes the view so every body starts on screen.
func fitSpan(bodies []*body.RigidBody) (span, distance float64) {
	reach := 0.0
	for _, b := range bodies {
		if r := b.Position().Norm() + b.Radius(); r > reach {
			reach = r
		}
	}
	if reach == 0 {
		return 24, 40
	}
	return reach * 2.8, reach * 5
}

// centroid averages the movable bodies. Immovable anchors are scenery and
// would pin the camera.
func centroid(bodies []*body.RigidBody) vecmath.Vec3 {
	var sum vecmath.Vec3
	n := 0
	for _, b := range bodies {
		if b.IsImmovable() {
			continue
		}
		sum = sum.Add(b.Position())
		n++
	}
	if n == 0 {
		return vecmath.Vec3{}
	}
	return sum.Scale(1 / float64(n))
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

// Update handles input and advances the simulation on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.attach(m.build(m.cfg))
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		case "x":
			m.cam.RotateX(0.1)
		case "X":
			m.cam.RotateX(-0.1)
		case "y":
			m.cam.RotateY(0.1)
		case "Y":
			m.cam.RotateY(-0.1)
		case "+", "=":
			m.cam.ZoomIn()
		case "-", "_":
			m.cam.ZoomOut()
		}
	case TickMsg:
		if m.running {
			if m.playHead == -1 {
				m.step()
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		return m, tick()
	}
	return m, nil
}

// step advances the world one tick and records the frame for replay.
func (m *Model) step() {
	if m.err != nil {
		return
	}
	if err := m.w.Step(m.cfg.Dt); err != nil {
		m.err = err
		m.running = false
		return
	}

	bodies := m.w.Bodies()
	f := engine.Frame{Time: m.w.Time(), Bodies: make([]engine.BodyState, len(bodies))}
	for i, b := range bodies {
		f.Bodies[i] = engine.Snapshot(b)
		if i < len(m.trails) {
			m.trails[i] = append(m.trails[i], b.Position())
			if len(m.trails[i]) > trailLimit {
				m.trails[i] = m.trails[i][1:]
			}
		}
	}
	m.history = append(m.history, f)
	if len(m.history) > historyLimit {
		m.history = m.history[1:]
	}
	m.energyHist = append(m.energyHist, m.w.Energy())
	if len(m.energyHist) > historyLimit {
		m.energyHist = m.energyHist[1:]
	}
}

// scrub moves the replay head through recorded frames. Stepping past the
// newest frame returns to live simulation.
func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) == 0 {
			return
		}
		m.playHead = len(m.history) - 1
		m.running = false
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// currentFrame returns the replayed frame, or a snapshot of the live world.
func (m *Model) currentFrame() engine.Frame {
	if m.playHead >= 0 && m.playHead < len(m.history) {
		return m.history[m.playHead]
	}
	bodies := m.w.Bodies()
	f := engine.Frame{Time: m.w.Time(), Bodies: make([]engine.BodyState, len(bodies))}
	for i, b := range bodies {
		f.Bodies[i] = engine.Snapshot(b)
	}
	return f
}

// draw renders one frame onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	frame := m.currentFrame()
	bodies := m.w.Bodies()
	m.cam.LookAt(frameCentroid(frame, bodies))

	pw, ph := m.canvas.Width*2, m.canvas.Height*4
	if m.boxWf != nil {
		Render(m.canvas, m.boxWf, m.cam)
	} else {
		Render(m.canvas, AxesWireframe(2), m.cam)
	}

	for _, trail := range m.trails {
		for _, p := range trail {
			if x, y, _, ok := m.cam.Project(p, pw, ph); ok {
				m.canvas.Set(x, y)
			}
		}
	}

	for i, bs := range frame.Bodies {
		x, y, depth, ok := m.cam.Project(bs.Position, pw, ph)
		if !ok {
			continue
		}
		r := 0
		awake := true
		if i < len(bodies) {
			r = int(bodies[i].Radius() * m.cam.Scale(depth, pw, ph))
			awake = bodies[i].IsAwake()
		}
		if r > maxDotRadius {
			r = maxDotRadius
		}
		if awake {
			m.canvas.FillCircle(x, y, r)
		} else {
			m.canvas.DrawCircle(x, y, r)
		}
	}
}

func frameCentroid(f engine.Frame, bodies []*body.RigidBody) vecmath.Vec3 {
	var sum vecmath.Vec3
	n := 0
	for i, bs := range f.Bodies {
		if i < len(bodies) && bodies[i].IsImmovable() {
			continue
		}
		sum = sum.Add(bs.Position)
		n++
	}
	if n == 0 {
		return vecmath.Vec3{}
	}
	return sum.Scale(1 / float64(n))
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  space    - pause/resume             ║
║  r        - rebuild the scene        ║
║  q        - quit                     ║
║  [ / ]    - replay back/forward      ║
║  x/X y/Y  - orbit camera             ║
║  + / -    - zoom                     ║
║  t        - cycle themes             ║
║  ?        - toggle this help         ║
╚══════════════════════════════════════╝`

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	m.draw()
	frame := m.currentFrame()

	awake := 0
	for _, b := range m.w.Bodies() {
		if b.IsAwake() {
			awake++
		}
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.energyHist) > 1 {
		data := m.energyHist
		if len(data) > chartWindow {
			data = data[len(data)-chartWindow:]
		}
		chart := asciigraph.Plot(data, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.2fs", frame.Time/1000)) + "\n")
	s.WriteString(labelStyle.Render("steps") + valueStyle.Render(fmt.Sprintf("%d", m.w.Steps())) + "\n")
	s.WriteString(labelStyle.Render("bodies") + valueStyle.Render(fmt.Sprintf("%d (%d awake)", len(m.w.Bodies()), awake)) + "\n")
	s.WriteString(labelStyle.Render("energy") + valueStyle.Render(fmt.Sprintf("%.5f", m.w.Energy())) + "\n")
	s.WriteString(helpStyle.Render("space:pause r:reset q:quit\nt:theme ?:help [ ]:replay\nx/y:orbit +/-:zoom"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("ERROR " + m.err.Error())
	case m.playHead != -1:
		return pausedStyle.Render(fmt.Sprintf("REPLAY %d/%d", m.playHead+1, len(m.history)))
	case !m.running:
		return pausedStyle.Render("PAUSED")
	}
	return statusStyle.Render("RUNNING")
}

// Run opens the live viewer for one scene and blocks until quit.
func Run(name string, build Builder, cfg engine.Config) error {
	_, err := tea.NewProgram(NewModel(name, build, cfg), tea.WithAltScreen()).Run()
	return err
}
