package scene

import "github.com/aquilax/go-perlin"

const (
	defaultAlpha   = 2.0
	defaultBeta    = 2.0
	defaultOctaves = 3
)

// Noise restricts a fill to cells where 2D Perlin noise sampled at
// (x*Scale, y*Scale) exceeds Threshold. Noise values lie roughly in [-1, 1].
type Noise struct {
	Scale     float64 `yaml:"scale"`
	Threshold float64 `yaml:"threshold"`
	Alpha     float64 `yaml:"alpha,omitempty"`
	Beta      float64 `yaml:"beta,omitempty"`
	Octaves   int32   `yaml:"octaves,omitempty"`
	Seed      int64   `yaml:"seed"`
}

func (n *Noise) sampler() func(x, y int) bool {
	alpha, beta, octaves := n.Alpha, n.Beta, n.Octaves
	if alpha == 0 {
		alpha = defaultAlpha
	}
	if beta == 0 {
		beta = defaultBeta
	}
	if octaves <= 0 {
		octaves = defaultOctaves
	}
	p := perlin.NewPerlin(alpha, beta, octaves, n.Seed)
	return func(x, y int) bool {
		return p.Noise2D(float64(x)*n.Scale, float64(y)*n.Scale) > n.Threshold
	}
}
