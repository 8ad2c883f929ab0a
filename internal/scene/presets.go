package scene

import (
	"fmt"
	"sort"

	"fluxsim/pkg/particle"
)

// Presets maps preset names to constructors. Each call returns a fresh scene
// that callers may modify.
var Presets = map[string]func() *Scene{
	"classic":   classic,
	"column":    column,
	"shelves":   shelves,
	"hourglass": hourglass,
	"rain":      rain,
	"cavern":    cavern,
}

// Lookup returns a fresh copy of the named preset.
func Lookup(name string) (*Scene, error) {
	build, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return build(), nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func rect(kind particle.Kind, x, y, w, h int) Fill {
	return Fill{Kind: kind, X: x, Y: y, W: w, H: h}
}

func classic() *Scene {
	return &Scene{
		Name:        "classic",
		Description: "sand block above a static bar, floaty block below it",
		Width:       640,
		Height:      480,
		Fills: []Fill{
			rect(particle.Heavy, 100, 0, 100, 50),
			rect(particle.Static, 125, 200, 50, 3),
			rect(particle.Floaty, 100, 300, 100, 50),
		},
	}
}

func column() *Scene {
	return &Scene{
		Name:        "column",
		Description: "heavy and floaty blocks meeting head-on in a narrow shaft",
		Width:       64,
		Height:      96,
		Fills: []Fill{
			rect(particle.Static, 0, 0, 20, 96),
			rect(particle.Static, 44, 0, 20, 96),
			rect(particle.Heavy, 20, 0, 24, 20),
			rect(particle.Floaty, 20, 76, 24, 20),
		},
	}
}

func shelves() *Scene {
	s := &Scene{
		Name:        "shelves",
		Description: "sand cascading over staggered static shelves",
		Width:       120,
		Height:      90,
		Fills:       []Fill{rect(particle.Heavy, 10, 0, 100, 12)},
	}
	for i := 0; i < 4; i++ {
		y := 20 + i*16
		if i%2 == 0 {
			s.Fills = append(s.Fills, rect(particle.Static, 0, y, 90, 2))
		} else {
			s.Fills = append(s.Fills, rect(particle.Static, 30, y, 90, 2))
		}
	}
	return s
}

func hourglass() *Scene {
	const (
		w     = 80
		h     = 120
		neck  = 8
		slope = (w - neck) / 2
		top   = 40
	)
	s := &Scene{
		Name:        "hourglass",
		Description: "sand draining through a funnel",
		Width:       w,
		Height:      h,
		Fills:       []Fill{rect(particle.Heavy, 0, 0, w, top)},
	}
	for i := 0; i < slope; i++ {
		y := top + i
		s.Fills = append(s.Fills,
			rect(particle.Static, 0, y, i+1, 1),
			rect(particle.Static, w-i-1, y, i+1, 1),
		)
	}
	return s
}

func rain() *Scene {
	return &Scene{
		Name:        "rain",
		Description: "noise-scattered droplets falling into a basin",
		Width:       160,
		Height:      100,
		Fills: []Fill{
			{Kind: particle.Heavy, X: 0, Y: 0, W: 160, H: 40, Noise: &Noise{Scale: 0.35, Threshold: 0.2, Seed: 7}},
			rect(particle.Static, 0, 97, 160, 3),
			rect(particle.Static, 0, 60, 3, 40),
			rect(particle.Static, 157, 60, 3, 40),
		},
	}
}

func cavern() *Scene {
	return &Scene{
		Name:        "cavern",
		Description: "Perlin-noise rock with sand above and bubbles below",
		Width:       160,
		Height:      120,
		Fills: []Fill{
			{Kind: particle.Static, X: 0, Y: 0, W: 160, H: 120, Noise: &Noise{Scale: 0.06, Threshold: 0.12, Seed: 1337}},
			rect(particle.Heavy, 40, 0, 80, 12),
			rect(particle.Floaty, 40, 108, 80, 12),
		},
	}
}
