package cosmo

// Vertex is a model-space vertex. Output and TransformedNormal are
// derived fields: they are unset until TransformVertex has run and are
// never mutated afterwards, since the transformer returns a fresh value.
//
// Output holds the screen-space position in X, Y, Z and the pre-divide
// clip-space w in W, which the rasterizer needs for perspective-correct
// interpolation.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texcoord Vector
	Color    Color

	Output            VectorW
	TransformedNormal Vector
}

// Fragment is one rasterized sample point: the interpolated model-space
// surface position plus a light intensity in [0,1] (emissive bodies may
// push it above 1).
type Fragment struct {
	Position  Vector
	Intensity float64
}

// InterpolateVertexes blends the model-space attributes of a triangle's
// corners with perspective-corrected barycentric weights.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b)
	v.TransformedNormal = interpolateVectors(v1.TransformedNormal, v2.TransformedNormal, v3.TransformedNormal, b)
	v.Texcoord = interpolateVectors(v1.Texcoord, v2.Texcoord, v3.Texcoord, b)
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	return v
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateColors(c1, c2, c3 Color, b VectorW) Color {
	r := c1.R*b.X + c2.R*b.Y + c3.R*b.Z
	g := c1.G*b.X + c2.G*b.Y + c3.G*b.Z
	bl := c1.B*b.X + c2.B*b.Y + c3.B*b.Z
	a := c1.A*b.X + c2.A*b.Y + c3.A*b.Z
	return Color{r * b.W, g * b.W, bl * b.W, a * b.W}
}
