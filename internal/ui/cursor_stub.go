//go:build !ebiten

package ui

// Brush is a no-op placeholder used when the ebiten build tag is absent.
type Brush struct {
	State BrushState
}

// NewBrush constructs a stub brush.
func NewBrush(int) *Brush { return &Brush{State: DefaultBrush()} }

// Update is a no-op in headless builds.
func (b *Brush) Update(any) {}

// Draw is a no-op placeholder.
func (b *Brush) Draw(any) {}
