package ui

import (
	"fmt"

	"fluxsim/pkg/particle"
)

// MaxBrushRadius bounds the brush size.
const MaxBrushRadius = 32

// BrushState is the tool the GUI paints with.
type BrushState struct {
	Kind   particle.Kind
	Radius int
}

// DefaultBrush paints heavy particles in a 5x5 square.
func DefaultBrush() BrushState {
	return BrushState{Kind: particle.Heavy, Radius: 2}
}

// BrushKeeper is implemented by sims that remember the kind being painted.
type BrushKeeper interface {
	Brush() particle.Kind
	SetBrush(kind particle.Kind)
}

// BrushFor returns the default brush loaded with the kind sim keeps, if any.
func BrushFor(sim any) BrushState {
	b := DefaultBrush()
	if k, ok := sim.(BrushKeeper); ok {
		b.Kind = k.Brush()
	}
	return b
}

// SelectFor is Select that also records the new kind on sim.
func (b *BrushState) SelectFor(digit int, sim any) bool {
	if !b.Select(digit) {
		return false
	}
	if k, ok := sim.(BrushKeeper); ok {
		k.SetBrush(b.Kind)
	}
	return true
}

// Select maps the digit keys 1-4 to static, heavy, floaty and the eraser.
func (b *BrushState) Select(digit int) bool {
	switch digit {
	case 1:
		b.Kind = particle.Static
	case 2:
		b.Kind = particle.Heavy
	case 3:
		b.Kind = particle.Floaty
	case 4:
		b.Kind = particle.Empty
	default:
		return false
	}
	return true
}

// Grow adjusts the radius by delta, clamped to [0, MaxBrushRadius].
func (b *BrushState) Grow(delta int) {
	b.Radius = min(max(b.Radius+delta, 0), MaxBrushRadius)
}

func (b BrushState) String() string {
	name := b.Kind.String()
	if b.Kind == particle.Empty {
		name = "eraser"
	}
	return fmt.Sprintf("%s r=%d", name, b.Radius)
}

// CellAt converts a screen position to a grid coordinate at the given scale.
func CellAt(px, py, scale int) particle.Coord {
	if scale <= 0 {
		scale = 1
	}
	return particle.Coord{X: floorDiv(px, scale), Y: floorDiv(py, scale)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
