//go:build ebiten

package ui

import (
	"image/color"

	"fluxsim/pkg/particle"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Painter is implemented by sims that accept brush strokes between steps.
type Painter interface {
	Paint(kind particle.Kind, center particle.Coord, radius int)
}

var digitKeys = [...]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Brush handles brush selection and mouse painting, and draws the brush
// outline under the cursor.
type Brush struct {
	State BrushState
	scale int
	pixel *ebiten.Image
}

// NewBrush constructs a brush tool for a view drawn at scale.
func NewBrush(scale int) *Brush {
	b := &Brush{State: DefaultBrush(), scale: max(scale, 1)}
	b.pixel = ebiten.NewImage(1, 1)
	b.pixel.Fill(color.White)
	return b
}

// Update reads the keyboard and mouse and paints into p while the left button
// is held. Brush selections are recorded on p when it is a BrushKeeper.
func (b *Brush) Update(p Painter) {
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			b.State.SelectFor(i+1, p)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		b.State.Grow(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		b.State.Grow(1)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		if dy > 0 {
			b.State.Grow(1)
		} else {
			b.State.Grow(-1)
		}
	}
	if p != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.Paint(b.State.Kind, CellAt(x, y, b.scale), b.State.Radius)
	}
}

// Draw outlines the brush footprint around the cursor.
func (b *Brush) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	c := CellAt(x, y, b.scale)
	r := b.State.Radius
	left := float64((c.X - r) * b.scale)
	top := float64((c.Y - r) * b.scale)
	side := float64((2*r + 1) * b.scale)

	b.line(screen, left, top, side, 1)
	b.line(screen, left, top+side-1, side, 1)
	b.line(screen, left, top, 1, side)
	b.line(screen, left+side-1, top, 1, side)
}

func (b *Brush) line(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(0.6)
	screen.DrawImage(b.pixel, op)
}
