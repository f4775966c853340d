package cosmo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSphere(t *testing.T) {
	stacks, slices := 8, 16
	m := NewSphere(stacks, slices)

	// Two triangles per quad except the single-triangle pole rows.
	assert.Len(t, m.Triangles, (stacks*2-2)*slices)

	for _, tri := range m.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			assert.InDelta(t, 1, v.Position.Length(), 1e-9)
			// Unit sphere: the normal is the position.
			assert.Equal(t, v.Position, v.Normal)
		}
	}

	box := m.BoundingBox()
	assert.InDelta(t, -1, box.Min.Y, 1e-9)
	assert.InDelta(t, 1, box.Max.Y, 1e-9)
}

func TestBoundingBox(t *testing.T) {
	m := NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(Vector{-1, 0, 0}, Vector{2, 1, 0}, Vector{0, -3, 5}),
	})
	box := m.BoundingBox()
	assert.Equal(t, Vector{-1, -3, 0}, box.Min)
	assert.Equal(t, Vector{2, 1, 5}, box.Max)
	assert.Equal(t, Vector{0.5, -1, 2.5}, box.Center())
}

func TestMeshTransform(t *testing.T) {
	m := NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}),
	})
	m.Transform(Translate(Vector{0, 0, 2}))
	assert.Equal(t, Vector{0, 0, 2}, m.Triangles[0].V1.Position)
	// Translation leaves normals alone.
	assert.InDelta(t, 1, math.Abs(m.Triangles[0].V1.Normal.Z), 1e-9)
}

func TestMeshSimplify(t *testing.T) {
	m := NewSphere(24, 48)
	simplified := m.Simplify(0.25)
	require.NotEmpty(t, simplified.Triangles)
	assert.Less(t, len(simplified.Triangles), len(m.Triangles))
}

func TestLoadOBJFromBytes(t *testing.T) {
	data := []byte(`
# a single quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`)
	m, err := LoadOBJFromBytes(data)
	require.NoError(t, err)
	// The quad fan-triangulates into two triangles.
	require.Len(t, m.Triangles, 2)
	assert.Equal(t, Vector{0, 0, 0}, m.Triangles[0].V1.Position)
	assert.Equal(t, Vector{0, 0, 1}, m.Triangles[0].V1.Normal)
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	data := []byte(`
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)
	m, err := LoadOBJFromBytes(data)
	require.NoError(t, err)
	require.Len(t, m.Triangles, 1)
	assert.Equal(t, Vector{1, 0, 0}, m.Triangles[0].V2.Position)
	// No normals in the file: the face normal is substituted.
	assert.InDelta(t, 1, math.Abs(m.Triangles[0].V1.Normal.Z), 1e-9)
}

func TestSmoothNormals(t *testing.T) {
	m := NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}),
		NewTriangleForPoints(Vector{0, 0, 0}, Vector{0, 1, 0}, Vector{-1, 0, 1}),
	})
	m.SmoothNormals()
	for _, tri := range m.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			assert.InDelta(t, 1, v.Normal.Length(), 1e-9)
		}
	}
}
