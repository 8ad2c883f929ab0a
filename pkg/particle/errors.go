package particle

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by every OutOfBoundsError.
	ErrOutOfBounds = errors.New("particle: coordinate out of bounds")

	// ErrUnknownKind indicates a kind name or value outside the enumeration.
	ErrUnknownKind = errors.New("particle: unknown kind")
)

// OutOfBoundsError reports a single-cell operation addressed outside the grid.
// It signals a caller bug rather than a transient condition.
type OutOfBoundsError struct {
	Loc    Coord
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("particle: loc %v out of bounds for %dx%d grid", e.Loc, e.Width, e.Height)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
