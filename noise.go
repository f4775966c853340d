package cosmo

import opensimplex "github.com/ojrac/opensimplex-go"

// NoiseField is a deterministic scalar field sampled at 2D or 3D
// coordinates, returning values in [-1, 1]. Implementations must be
// safe for concurrent reads: every fragment of a frame samples the same
// field from arbitrary goroutines.
type NoiseField interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

type simplexField struct {
	noise opensimplex.Noise
}

// OpenSimplex returns an OpenSimplex-backed NoiseField seeded with seed.
// Identical seeds produce identical fields.
func OpenSimplex(seed int64) NoiseField {
	return simplexField{opensimplex.New(seed)}
}

func (f simplexField) Noise2D(x, y float64) float64 {
	return f.noise.Eval2(x, y)
}

func (f simplexField) Noise3D(x, y, z float64) float64 {
	return f.noise.Eval3(x, y, z)
}
