package particle

import "fmt"

// Bias supplies the lateral drift drawn for each moving particle: -1 moves
// left, +1 moves right and 0 keeps the column. Other values count as 0.
type Bias interface {
	Lateral() int
}

// BiasFunc adapts a plain function to the Bias interface.
type BiasFunc func() int

// Lateral calls f.
func (f BiasFunc) Lateral() int { return f() }

// Step returns the grid that follows src after one tick. src is not modified.
// A nil bias disables lateral drift.
func Step(src *Grid, bias Bias) *Grid {
	dst := NewGrid(src.w, src.h)
	StepInto(dst, src, bias)
	return dst
}

// StepInto computes the tick following src into dst and returns how many
// particles changed cell. dst must be a distinct grid of the same size; its
// previous contents are discarded.
//
// Every occupied cell of src is visited once in row-major order. Static
// particles stay. Heavy particles try the cell below and Floaty particles the
// cell above; from wherever that leaves them they then try one cell in the
// direction of their lateral bias. A candidate is accepted only if it is in
// bounds, unoccupied in src and not yet claimed in dst.
func StepInto(dst, src *Grid, bias Bias) int {
	if dst == src {
		panic("particle: StepInto needs distinct source and destination grids")
	}
	if dst.w != src.w || dst.h != src.h {
		panic(fmt.Sprintf("particle: StepInto size mismatch %dx%d vs %dx%d", dst.w, dst.h, src.w, src.h))
	}
	dst.Clear()

	free := func(c Coord) bool {
		if !src.Contains(c) {
			return false
		}
		idx := src.index(c)
		return src.cells[idx] == Empty && dst.cells[idx] == Empty
	}

	moved := 0
	for i, kind := range src.cells {
		if kind == Empty {
			continue
		}
		origin := Coord{X: i % src.w, Y: i / src.w}
		dest := origin
		if kind.Movable() {
			lateral := 0
			if bias != nil {
				lateral = bias.Lateral()
			}
			dy := 1
			if kind == Floaty {
				dy = -1
			}
			if c := dest.Add(0, dy); free(c) {
				dest = c
			}
			if lateral == -1 || lateral == 1 {
				if c := dest.Add(lateral, 0); free(c) {
					dest = c
				}
			}
		}
		claim(dst, dest, kind)
		if dest != origin {
			moved++
		}
	}
	return moved
}

// claim records kind at loc in the grid being built. Reaching an
// out-of-bounds or already claimed cell means the kernel is broken.
func claim(dst *Grid, loc Coord, kind Kind) {
	if !dst.Contains(loc) {
		panic(fmt.Sprintf("particle: step produced out-of-bounds destination %v", loc))
	}
	idx := dst.index(loc)
	if dst.cells[idx] != Empty {
		panic(fmt.Sprintf("particle: destination %v claimed twice in one step", loc))
	}
	dst.set(idx, kind)
}
