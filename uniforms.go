package cosmo

// Uniforms is the per-frame read-only state shared by every shading
// call. A snapshot is built once per frame (or per draw) and passed by
// pointer; the pipeline never mutates it, which is what makes vertex
// and fragment shading safe to run on any number of goroutines.
type Uniforms struct {
	Model      Matrix
	View       Matrix
	Projection Matrix
	Viewport   Matrix

	// Time increases monotonically across frames and drives all
	// surface animation.
	Time float64

	Noise NoiseField

	// Body selects the active surface shader for this snapshot.
	Body Body
}
