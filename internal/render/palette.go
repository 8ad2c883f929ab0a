package render

import (
	"image/color"

	"fluxsim/pkg/particle"
)

var kindColors = [...]color.RGBA{
	particle.Empty:  {R: 0, G: 0, B: 0, A: 255},
	particle.Static: {R: 255, G: 255, B: 255, A: 255},
	particle.Heavy:  {R: 204, G: 204, B: 0, A: 255},
	particle.Floaty: {R: 155, G: 0, B: 0, A: 255},
}

// ColorOf returns the display color for a kind. Unknown kinds render as
// Empty.
func ColorOf(kind particle.Kind) color.RGBA {
	if !kind.Valid() {
		return kindColors[particle.Empty]
	}
	return kindColors[kind]
}

// KindOf maps a color back to its kind. The table is injective, so the second
// result is false for any color ColorOf never returns.
func KindOf(c color.Color) (particle.Kind, bool) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for k, kc := range kindColors {
		if kc == rgba {
			return particle.Kind(k), true
		}
	}
	return particle.Empty, false
}

// Palette returns the color table indexed by kind value.
func Palette() []color.RGBA {
	out := make([]color.RGBA, len(kindColors))
	copy(out, kindColors[:])
	return out
}

// GIFPalette returns the color table as a color.Palette for paletted images.
func GIFPalette() color.Palette {
	p := make(color.Palette, len(kindColors))
	for i, c := range kindColors {
		p[i] = c
	}
	return p
}
