// Package tui shows a flux world in the terminal. Two grid rows share one
// character cell through the upper half block glyph.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fluxsim/internal/core"
	"fluxsim/internal/render"
	"fluxsim/internal/sims/flux"
	"fluxsim/pkg/particle"
)

const (
	frameInterval   = time.Second / 60
	maxStepsPerTick = 4
	minTPS          = 1
	maxTPS          = 240
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	warn  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Model is the Bubble Tea model driving one world.
type Model struct {
	world *flux.World
	timer *core.FixedStep

	paused bool
	seed   int64

	width  int
	height int

	styles map[[2]particle.Kind]lipgloss.Style
}

// NewModel wraps w. tps is the simulation rate, independent of the 60 Hz
// redraw.
func NewModel(w *flux.World, tps int) Model {
	m := Model{
		world:  w,
		timer:  core.NewFixedStep(tps),
		seed:   w.Config().Seed,
		width:  80,
		height: 24,
		styles: map[[2]particle.Kind]lipgloss.Style{},
	}
	for _, top := range particle.Kinds() {
		for _, bottom := range particle.Kinds() {
			m.styles[[2]particle.Kind{top, bottom}] = lipgloss.NewStyle().
				Foreground(hex(render.ColorOf(top))).
				Background(hex(render.ColorOf(bottom)))
		}
	}
	return m
}

// Run starts the program on the alternate screen and blocks until it quits.
// Library logging is muted while the screen is owned by the program.
func Run(w *flux.World, tps int) error {
	prev := core.Logf
	core.SetLogger(nil)
	defer core.SetLogger(prev)

	_, err := tea.NewProgram(NewModel(w, tps), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return frame() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		if !m.paused {
			for i := 0; i < maxStepsPerTick && m.timer.ShouldStep(); i++ {
				m.world.Step()
			}
		}
		return m, frame()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "n":
		m.world.Step()
	case "r":
		m.world.Reset(m.seed)
	case "s":
		m.seed = time.Now().UnixNano()
		m.world.Reset(m.seed)
	case "+", "=":
		m.timer.SetTPS(min(m.timer.TPS()*2, maxTPS))
	case "-", "_":
		m.timer.SetTPS(max(m.timer.TPS()/2, minTPS))
	}
	return m, nil
}

func (m Model) View() string {
	cols := max(m.width, 1)
	rows := max(m.height-2, 1)

	r := rasterize(m.world.Grid(), cols, rows*2)
	var b strings.Builder
	for y := 0; y < r.h; y += 2 {
		for x := 0; x < r.w; x++ {
			pair := [2]particle.Kind{r.at(x, y), r.at(x, y+1)}
			b.WriteString(m.styles[pair].Render("▀"))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	c := m.world.Grid().Census()
	state := ""
	if m.paused {
		state = warn.Render(" paused")
	}
	return title.Render("fluxsim") + state + dim.Render(fmt.Sprintf(
		"  tick %d  tps %d  static %d heavy %d floaty %d  [space] pause [n] step [r] reset [+/-] tps [q] quit",
		m.world.Tick(), m.timer.TPS(), c.Static, c.Heavy, c.Floaty))
}

type raster struct {
	w, h  int
	cells []particle.Kind
}

func (r raster) at(x, y int) particle.Kind {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return particle.Empty
	}
	return r.cells[y*r.w+x]
}

// rasterize shrinks g by a uniform integer factor so it fits in cols x rows.
// Each raster cell shows the most common non-empty kind of its block.
func rasterize(g *particle.Grid, cols, rows int) raster {
	block := max(ceilDiv(g.Width(), cols), ceilDiv(g.Height(), rows), 1)
	r := raster{w: ceilDiv(g.Width(), block), h: ceilDiv(g.Height(), block)}
	r.cells = make([]particle.Kind, r.w*r.h)

	src := g.Cells()
	var counts [4]int
	for ry := 0; ry < r.h; ry++ {
		for rx := 0; rx < r.w; rx++ {
			counts = [4]int{}
			for y := ry * block; y < min((ry+1)*block, g.Height()); y++ {
				for x := rx * block; x < min((rx+1)*block, g.Width()); x++ {
					if k := src[y*g.Width()+x]; k.Valid() {
						counts[k]++
					}
				}
			}
			best, n := particle.Empty, 0
			for _, k := range []particle.Kind{particle.Static, particle.Heavy, particle.Floaty} {
				if counts[k] > n {
					best, n = k, counts[k]
				}
			}
			r.cells[ry*r.w+rx] = best
		}
	}
	return r
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func hex(c interface{ RGBA() (r, g, b, a uint32) }) lipgloss.Color {
	r, gr, bl, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, gr>>8, bl>>8))
}
