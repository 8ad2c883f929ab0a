package particle

// Census counts particles per kind.
type Census struct {
	Static int
	Heavy  int
	Floaty int
}

// Total returns the number of particles counted.
func (c Census) Total() int { return c.Static + c.Heavy + c.Floaty }

// Of returns the count for a single kind. Empty and unknown kinds count zero.
func (c Census) Of(kind Kind) int {
	switch kind {
	case Static:
		return c.Static
	case Heavy:
		return c.Heavy
	case Floaty:
		return c.Floaty
	default:
		return 0
	}
}

// Census counts the particles currently in the grid.
func (g *Grid) Census() Census {
	var c Census
	for _, k := range g.cells {
		switch k {
		case Static:
			c.Static++
		case Heavy:
			c.Heavy++
		case Floaty:
			c.Floaty++
		}
	}
	return c
}

// MeanRow returns the average row of all particles of the given kind. The
// second result is false when the grid holds none.
func (g *Grid) MeanRow(kind Kind) (float64, bool) {
	if kind == Empty {
		return 0, false
	}
	sum, n := 0, 0
	for i, k := range g.cells {
		if k != kind {
			continue
		}
		sum += i / g.w
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
