package flux

import "fluxsim/pkg/particle"

const maxTrace = 1 << 16

// Sample records what one tick did.
type Sample struct {
	Tick   int
	Moved  int
	Census particle.Census
	// HeavyRow and FloatyRow are mean row indices, zero when no particle of
	// that kind exists.
	HeavyRow  float64
	FloatyRow float64
}

func sampleOf(tick, moved int, g *particle.Grid) Sample {
	s := Sample{Tick: tick, Moved: moved, Census: g.Census()}
	s.HeavyRow, _ = g.MeanRow(particle.Heavy)
	s.FloatyRow, _ = g.MeanRow(particle.Floaty)
	return s
}

// Series extracts one float series per field for plotting.
func Series(trace []Sample) (moved, heavy, floaty []float64) {
	moved = make([]float64, len(trace))
	heavy = make([]float64, len(trace))
	floaty = make([]float64, len(trace))
	for i, s := range trace {
		moved[i] = float64(s.Moved)
		heavy[i] = s.HeavyRow
		floaty[i] = s.FloatyRow
	}
	return moved, heavy, floaty
}

// Snapshot describes the current grid as a sample for the current tick.
func (w *World) Snapshot() Sample {
	moved := 0
	if n := len(w.trace); n > 0 {
		moved = w.trace[n-1].Moved
	}
	return sampleOf(w.tick, moved, w.cur)
}
