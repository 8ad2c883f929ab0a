package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxsim/internal/sims/flux"
	"fluxsim/pkg/particle"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newWorld(t *testing.T) *flux.World {
	t.Helper()
	cfg := flux.DefaultConfig()
	cfg.Scene = "column"
	w, err := flux.NewWithConfig(cfg)
	require.NoError(t, err)
	return w
}

func TestKeysControlWorld(t *testing.T) {
	w := newWorld(t)
	m := NewModel(w, 30)

	next, _ := m.Update(key("n"))
	m = next.(Model)
	assert.Equal(t, 1, w.Tick())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	assert.True(t, m.paused)

	next, _ = m.Update(frameMsg{})
	m = next.(Model)
	assert.Equal(t, 1, w.Tick(), "paused model must not step on frames")

	next, _ = m.Update(key("+"))
	m = next.(Model)
	assert.Equal(t, 60, m.timer.TPS())
	next, _ = m.Update(key("-"))
	m = next.(Model)
	next, _ = m.Update(key("-"))
	m = next.(Model)
	assert.Equal(t, 15, m.timer.TPS())

	next, _ = m.Update(key("r"))
	m = next.(Model)
	assert.Equal(t, 0, w.Tick())

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSizeAndView(t *testing.T) {
	w := newWorld(t)
	next, _ := NewModel(w, 30).Update(tea.WindowSizeMsg{Width: 32, Height: 26})
	m := next.(Model)

	view := m.View()
	lines := strings.Split(view, "\n")
	// 64x96 grid into 32 cols x 48 raster rows: block 2, 24 text rows + status.
	assert.Len(t, lines, 25)
	assert.Contains(t, lines[24], "tick 0")
	assert.Contains(t, lines[24], "heavy 480")
}

func TestRasterizePrefersOccupiedKinds(t *testing.T) {
	g := particle.NewGrid(4, 4)
	require.NoError(t, g.Add(particle.Heavy, particle.Coord{X: 0, Y: 0}))
	g.AddRect(particle.Static, particle.Coord{X: 2, Y: 2}, 2, 1)
	require.NoError(t, g.Add(particle.Floaty, particle.Coord{X: 3, Y: 3}))

	r := rasterize(g, 2, 2)
	assert.Equal(t, 2, r.w)
	assert.Equal(t, 2, r.h)
	assert.Equal(t, []particle.Kind{
		particle.Heavy, particle.Empty,
		particle.Empty, particle.Static,
	}, r.cells)
	assert.Equal(t, particle.Empty, r.at(5, 0))
}

func TestRasterizeKeepsSmallGridsAtFullSize(t *testing.T) {
	g := particle.NewGrid(3, 2)
	r := rasterize(g, 80, 40)
	assert.Equal(t, 3, r.w)
	assert.Equal(t, 2, r.h)
}
