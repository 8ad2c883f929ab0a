package particle

import "fmt"

// Coord addresses a grid cell. The origin is the top-left corner and y grows
// downwards.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
