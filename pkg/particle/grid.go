package particle

import (
	"fmt"
	"iter"
	"slices"
)

// Grid stores particle kinds in a dense row-major slice. Cells that hold
// Empty are unoccupied; there is no separate notion of an absent entry.
type Grid struct {
	w, h  int
	cells []Kind
	count int
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Kind, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of occupied cells.
func (g *Grid) Len() int { return g.count }

// Contains reports whether loc lies inside the grid.
func (g *Grid) Contains(loc Coord) bool {
	return loc.X >= 0 && loc.X < g.w && loc.Y >= 0 && loc.Y < g.h
}

func (g *Grid) index(loc Coord) int { return loc.Y*g.w + loc.X }

func (g *Grid) boundsErr(loc Coord) error {
	return &OutOfBoundsError{Loc: loc, Width: g.w, Height: g.h}
}

// At returns the kind stored at loc, or Empty when loc is outside the grid.
func (g *Grid) At(loc Coord) Kind {
	if !g.Contains(loc) {
		return Empty
	}
	return g.cells[g.index(loc)]
}

// Add places kind at loc, replacing whatever was there. Adding Empty clears
// the cell. It panics if kind is not one of Kinds().
func (g *Grid) Add(kind Kind, loc Coord) error {
	mustValid(kind)
	if !g.Contains(loc) {
		return g.boundsErr(loc)
	}
	g.set(g.index(loc), kind)
	return nil
}

// Remove clears loc and returns the kind that was stored there.
func (g *Grid) Remove(loc Coord) (Kind, error) {
	if !g.Contains(loc) {
		return Empty, g.boundsErr(loc)
	}
	idx := g.index(loc)
	old := g.cells[idx]
	g.set(idx, Empty)
	return old, nil
}

// Move relocates the particle at src to dst, overwriting dst. Moving an empty
// cell clears dst.
func (g *Grid) Move(src, dst Coord) error {
	if !g.Contains(src) {
		return g.boundsErr(src)
	}
	if !g.Contains(dst) {
		return g.boundsErr(dst)
	}
	kind, _ := g.Remove(src)
	g.set(g.index(dst), kind)
	return nil
}

// AddRect fills the half-open rectangle [corner.X, corner.X+w) x
// [corner.Y, corner.Y+h) with kind. Cells outside the grid are skipped.
// It panics if kind is not one of Kinds().
func (g *Grid) AddRect(kind Kind, corner Coord, w, h int) {
	mustValid(kind)
	x0, x1 := max(corner.X, 0), min(corner.X+w, g.w)
	y0, y1 := max(corner.Y, 0), min(corner.Y+h, g.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.set(y*g.w+x, kind)
		}
	}
}

func mustValid(kind Kind) {
	if !kind.Valid() {
		panic(fmt.Sprintf("particle: %v is not a particle kind", kind))
	}
}

func (g *Grid) set(idx int, kind Kind) {
	old := g.cells[idx]
	if old != Empty {
		g.count--
	}
	if kind != Empty {
		g.count++
	}
	g.cells[idx] = kind
}

// Clear removes every particle.
func (g *Grid) Clear() {
	clear(g.cells)
	g.count = 0
}

// Cells exposes the row-major backing slice for read-only use by renderers.
func (g *Grid) Cells() []Kind { return g.cells }

// Particles yields every occupied cell in row-major order.
func (g *Grid) Particles() iter.Seq2[Coord, Kind] {
	return func(yield func(Coord, Kind) bool) {
		for i, k := range g.cells {
			if k == Empty {
				continue
			}
			if !yield(Coord{X: i % g.w, Y: i / g.w}, k) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: slices.Clone(g.cells), count: g.count}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.w == other.w && g.h == other.h && slices.Equal(g.cells, other.cells)
}
