package render

import (
	"image"
	"image/gif"
	"io"

	"fluxsim/pkg/particle"
)

// Recorder accumulates grid frames for an animated GIF.
type Recorder struct {
	scale  int
	delay  int
	frames []*image.Paletted
	delays []int
}

// NewRecorder returns a Recorder that draws each cell as a scale x scale
// block and shows each frame for delay hundredths of a second.
func NewRecorder(scale, delay int) *Recorder {
	if scale <= 0 {
		scale = 1
	}
	if delay < 0 {
		delay = 0
	}
	return &Recorder{scale: scale, delay: delay}
}

// Capture appends the current state of g as a frame.
func (r *Recorder) Capture(g *particle.Grid) {
	w, h := g.Width(), g.Height()
	img := image.NewPaletted(image.Rect(0, 0, w*r.scale, h*r.scale), GIFPalette())
	cells := g.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			k := cells[y*w+x]
			if k == particle.Empty || !k.Valid() {
				continue
			}
			for dy := 0; dy < r.scale; dy++ {
				row := img.Pix[(y*r.scale+dy)*img.Stride:]
				for dx := 0; dx < r.scale; dx++ {
					row[x*r.scale+dx] = uint8(k)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
	r.delays = append(r.delays, r.delay)
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int { return len(r.frames) }

// Encode writes the captured frames as a GIF that loops forever.
func (r *Recorder) Encode(w io.Writer) error {
	anim := &gif.GIF{
		Image:     r.frames,
		Delay:     r.delays,
		LoopCount: 0,
	}
	return gif.EncodeAll(w, anim)
}
