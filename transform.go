package cosmo

import "math"

// wEpsilon guards the perspective divide. A clip-space w this close to
// zero would turn the divide into NaN/Inf; the policy here is to skip
// the divide and let the raw clip coordinates flow through, which keeps
// the function total and deterministic.
const wEpsilon = 1e-9

// TransformVertex maps a model-space vertex to screen space:
// projection * view * model, perspective divide, then the viewport
// matrix. The normal is re-oriented by the inverse-transpose of the
// model matrix's upper-left 3x3 block so it stays perpendicular under
// non-uniform scale; a singular block leaves the normal untouched.
//
// Pure function: the input vertex is copied, its untouched fields carry
// forward, and only Output and TransformedNormal are filled in.
func TransformVertex(v Vertex, u *Uniforms) Vertex {
	clip := u.Projection.Mul(u.View).Mul(u.Model).MulPositionW(v.Position)

	ndc := clip.Vector()
	if math.Abs(clip.W) > wEpsilon {
		ndc = ndc.DivScalar(clip.W)
	}

	screen := u.Viewport.MulPosition(ndc)

	v.Output = VectorW{screen.X, screen.Y, screen.Z, clip.W}
	v.TransformedNormal = u.Model.NormalMatrix().MulDirection(v.Normal)
	return v
}
