package cosmo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantField returns the same sample for every coordinate. The zero
// value is the "no noise" baseline field.
type constantField struct {
	v float64
}

func (f constantField) Noise2D(x, y float64) float64    { return f.v }
func (f constantField) Noise3D(x, y, z float64) float64 { return f.v }

func uniformsForBody(b Body, noise NoiseField, time float64) *Uniforms {
	return &Uniforms{
		Model:      Identity(),
		View:       Identity(),
		Projection: Identity(),
		Viewport:   Identity(),
		Time:       time,
		Noise:      noise,
		Body:       b,
	}
}

func TestDispatchTableIsComplete(t *testing.T) {
	for _, b := range Bodies() {
		require.NotNil(t, bodyShaders[b], "no shader for body %v", b)
	}
}

func TestShadeTotality(t *testing.T) {
	noise := OpenSimplex(42)
	fragments := []Fragment{
		{Vector{0, 0, 0}, 0},
		{Vector{0.5, -0.3, 0.8}, 1},
		{Vector{-1, 1, -1}, 0.5},
		{Vector{100, -100, 3}, 1.2},
	}
	for _, b := range Bodies() {
		b := b
		t.Run(b.String(), func(t *testing.T) {
			for _, f := range fragments {
				for _, time := range []float64{0, 1, 5000} {
					c := Shade(f, uniformsForBody(b, noise, time))
					for _, ch := range []float64{c.R, c.G, c.B, c.A} {
						require.False(t, math.IsNaN(ch) || math.IsInf(ch, 0),
							"body %v fragment %+v produced %v", b, f, c)
					}
				}
			}
		})
	}
}

func TestShadeDeterminism(t *testing.T) {
	noise := OpenSimplex(7)
	f := Fragment{Vector{0.1, 0.2, 0.3}, 0.9}
	for _, b := range Bodies() {
		u := uniformsForBody(b, noise, 123)
		first := Shade(f, u)
		second := Shade(f, u)
		// Bit-identical, not approximately equal: no hidden state.
		assert.Equal(t, first, second, "body %v", b)
	}
}

func TestRockyPlanetZeroNoiseBaseline(t *testing.T) {
	u := uniformsForBody(RockyPlanet, constantField{}, 0)
	c := Shade(Fragment{Vector{0.4, 0.1, -0.2}, 1}, u)
	// craters=0 and terrain=0 select the desert base; the dust overlay
	// factor is |0|*0.3 = 0, so the output is the desert color exactly.
	assert.Equal(t, RGB(180, 80, 20), c)
}

func TestStarZeroNoiseBaseline(t *testing.T) {
	u := uniformsForBody(Star, constantField{}, 0)
	c := Shade(Fragment{Vector{0.4, 0.1, -0.2}, 1}, u)
	// Both plasma layers are 0, so the base is the core color, and the
	// corona brightness multiplier is exactly 1.
	assert.Equal(t, RGB(255, 200, 0), c)
}

func TestRingedPlanetZeroNoiseBaseline(t *testing.T) {
	u := uniformsForBody(RingedPlanet, constantField{}, 0)
	c := Shade(Fragment{Vector{0.4, 0.1, -0.2}, 1}, u)
	// Pattern 0 takes the <=0 branch (pure edge color) and the derived
	// alpha is (|0|*0.5+0.5) * intensity = 0.5.
	expected := RGB(100, 80, 60).MulScalar(0.5).Alpha(0.5)
	assert.Equal(t, expected, c)
}

func TestCloudOverlayMonotonicity(t *testing.T) {
	// Past the cloud threshold, a larger gating sample must move the
	// color monotonically toward the overlay, with no jump.
	prev := -1.0
	for v := 0.31; v <= 1.0; v += 0.01 {
		u := uniformsForBody(CloudyPlanet, constantField{v}, 0)
		c := Shade(Fragment{Vector{0.4, 0.1, -0.2}, 1}, u)
		require.Greater(t, c.G, prev, "sample %v", v)
		prev = c.G
	}
}

func TestOceanFoamOverlayMonotonicity(t *testing.T) {
	prev := -1.0
	for v := 0.61; v <= 1.0; v += 0.01 {
		u := uniformsForBody(OceanPlanet, constantField{v}, 0)
		c := Shade(Fragment{Vector{0.4, 0.1, -0.2}, 1}, u)
		require.GreaterOrEqual(t, c.R, prev, "sample %v", v)
		prev = c.R
	}
}

func TestEmissiveBodies(t *testing.T) {
	assert.True(t, Star.Emissive())
	assert.True(t, AuroraPlanet.Emissive())
	assert.False(t, RockyPlanet.Emissive())
}

func TestBodyNames(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Bodies() {
		name := b.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", Body(-1).String())
}
