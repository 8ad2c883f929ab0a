package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"os"

	"fluxsim/pkg/particle"
)

// ErrUnknownColor is matched by every UnknownColorError.
var ErrUnknownColor = errors.New("render: color not in particle table")

// UnknownColorError reports a pixel whose color maps to no particle kind.
type UnknownColorError struct {
	At    particle.Coord
	Color color.RGBA
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("render: pixel %v has color #%02x%02x%02x%02x outside the particle table",
		e.At, e.Color.R, e.Color.G, e.Color.B, e.Color.A)
}

func (e *UnknownColorError) Unwrap() error { return ErrUnknownColor }

// DecodeImage builds a grid the size of img, mapping each pixel through
// KindOf. Fully transparent pixels are empty.
func DecodeImage(img image.Image) (*particle.Grid, error) {
	b := img.Bounds()
	g := particle.NewGrid(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			loc := particle.Coord{X: x - b.Min.X, Y: y - b.Min.Y}
			px := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if px.A == 0 {
				continue
			}
			kind, ok := KindOf(px)
			if !ok {
				return nil, &UnknownColorError{At: loc, Color: px}
			}
			if err := g.Add(kind, loc); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// LoadImage decodes a PNG or GIF file into a grid.
func LoadImage(path string) (*particle.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	g, err := DecodeImage(img)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// GridImage renders g as an RGBA image with one pixel per cell.
func GridImage(g *particle.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	FillRGBA(img.Pix, EncodeCells(nil, g), Palette())
	return img
}
