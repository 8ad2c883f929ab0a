package ui

import (
	"fmt"

	"fluxsim/internal/core"
	"fluxsim/pkg/particle"
)

type tickProvider interface {
	Tick() int
}

type gridProvider interface {
	Grid() *particle.Grid
}

// Status is the live data shown at the top of the HUD panel.
type Status struct {
	FPS    float64
	TPS    float64
	Paused bool
	Brush  BrushState
}

// StatusLines formats s together with whatever the sim exposes about its
// progress and population.
func StatusLines(sim core.Sim, s Status) []string {
	lines := []string{fmt.Sprintf("FPS %.1f  TPS %.1f", s.FPS, s.TPS)}
	if p, ok := sim.(tickProvider); ok {
		tick := fmt.Sprintf("tick %d", p.Tick())
		if s.Paused {
			tick += " (paused)"
		}
		lines = append(lines, tick)
	} else if s.Paused {
		lines = append(lines, "paused")
	}
	if p, ok := sim.(gridProvider); ok {
		c := p.Grid().Census()
		lines = append(lines,
			fmt.Sprintf("static %d", c.Static),
			fmt.Sprintf("heavy  %d", c.Heavy),
			fmt.Sprintf("floaty %d", c.Floaty),
		)
	}
	lines = append(lines, "brush "+s.Brush.String())
	return lines
}

// ParameterLines flattens a snapshot into "label: value" rows under group
// headings.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			v := p.Value
			if v == "" {
				v = "-"
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, v))
		}
	}
	return lines
}
