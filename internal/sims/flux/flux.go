package flux

import (
	"fmt"
	"image/color"
	"slices"

	"fluxsim/internal/core"
	"fluxsim/internal/render"
	"fluxsim/internal/scene"
	pcore "fluxsim/pkg/core"
	"fluxsim/pkg/particle"
)

// World owns a particle grid and advances it one tick per Step. A World is
// not safe for concurrent use.
type World struct {
	cfg Config

	initial *particle.Grid
	cur     *particle.Grid
	nxt     *particle.Grid
	display []uint8

	rng  *pcore.RNG
	bias particle.Bias

	tick  int
	trace []Sample
}

// New returns an empty world of the given size.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Scene = ""
	cfg.Width = w
	cfg.Height = h
	world, _ := NewWithConfig(cfg)
	return world
}

// NewWithConfig builds the initial grid described by cfg and resets the
// world to it.
func NewWithConfig(cfg Config) (*World, error) {
	g, err := initialGrid(cfg)
	if err != nil {
		return nil, err
	}
	w := &World{cfg: cfg, initial: g}
	w.Reset(0)
	return w, nil
}

func initialGrid(cfg Config) (*particle.Grid, error) {
	switch {
	case cfg.Image != "":
		return render.LoadImage(cfg.Image)
	case cfg.Scene != "":
		sc, err := scene.Resolve(cfg.Scene)
		if err != nil {
			return nil, err
		}
		return sc.Build(cfg.Width, cfg.Height)
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return particle.NewGrid(w, h), nil
}

func init() {
	core.Register("flux", func(m map[string]string) core.Sim {
		cfg := FromMap(m)
		w, err := NewWithConfig(cfg)
		if err != nil {
			core.Logf("flux: %v; starting with an empty grid", err)
			cfg.Scene, cfg.Image = "", ""
			w, _ = NewWithConfig(cfg)
		}
		return w
	})
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "flux" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cur.Width(), H: w.cur.Height()} }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Reset restores the initial grid. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(seed)
	w.bias = w.rng
	w.cur = w.initial.Clone()
	w.nxt = particle.NewGrid(w.cur.Width(), w.cur.Height())
	w.tick = 0
	w.trace = nil
}

// Step advances the world by one tick.
func (w *World) Step() {
	moved := particle.StepInto(w.nxt, w.cur, w.bias)
	w.cur, w.nxt = w.nxt, w.cur
	w.tick++

	w.trace = append(w.trace, sampleOf(w.tick, moved, w.cur))
	if len(w.trace) >= 2*maxTrace {
		w.trace = slices.Clone(w.trace[len(w.trace)-maxTrace:])
	}
}

// Run advances the world n ticks.
func (w *World) Run(n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

// Paint fills the square of the given radius around center with kind,
// clipped to the grid. Painting Empty erases.
func (w *World) Paint(kind particle.Kind, center particle.Coord, radius int) {
	if radius < 0 {
		radius = 0
	}
	corner := particle.Coord{X: center.X - radius, Y: center.Y - radius}
	w.cur.AddRect(kind, corner, 2*radius+1, 2*radius+1)
}

// Grid returns the current grid. It is replaced by the next Step.
func (w *World) Grid() *particle.Grid { return w.cur }

// Cells exposes the current display buffer, one kind value per cell.
func (w *World) Cells() []uint8 {
	w.display = render.EncodeCells(w.display, w.cur)
	return w.display
}

// Palette returns the color table for Cells.
func (w *World) Palette() []color.RGBA { return render.Palette() }

// Tick reports how many steps ran since the last reset.
func (w *World) Tick() int { return w.tick }

// Trace returns the per-tick samples since the last reset, at most the latest
// 65536. Steps append to it; Reset starts a new slice.
func (w *World) Trace() []Sample {
	return w.trace[max(len(w.trace)-maxTrace, 0):]
}

// Brush returns the kind interactive drivers paint with.
func (w *World) Brush() particle.Kind { return w.cfg.Brush }

// SetBrush changes the painted kind.
func (w *World) SetBrush(kind particle.Kind) {
	if kind.Valid() {
		w.cfg.Brush = kind
	}
}

func (w *World) String() string {
	return fmt.Sprintf("flux %dx%d tick=%d %v", w.cur.Width(), w.cur.Height(), w.tick, w.cur.Census())
}
