package cosmo

import (
	"math"

	"github.com/fogleman/simplify"
)

type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	t := Triangle{v1, v2, v3}
	t.FixNormals()
	return &t
}

func NewTriangleForPoints(p1, p2, p3 Vector) *Triangle {
	t := Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	t.FixNormals()
	return &t
}

// Normal returns the face normal.
func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// FixNormals substitutes the face normal for any vertex that has none.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := Vector{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

type Mesh struct {
	Triangles []*Triangle
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles}
}

// Transform bakes a matrix into the mesh, re-orienting normals with the
// matrix's normal transform.
func (m *Mesh) Transform(matrix Matrix) {
	nm := matrix.NormalMatrix()
	for _, t := range m.Triangles {
		for _, v := range []*Vertex{&t.V1, &t.V2, &t.V3} {
			v.Position = matrix.MulPosition(v.Position)
			v.Normal = nm.MulDirection(v.Normal).Normalize()
		}
	}
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

type Box struct {
	Min, Max Vector
}

func (b Box) Center() Vector {
	return b.Min.Lerp(b.Max, 0.5)
}

func (m *Mesh) BoundingBox() Box {
	if len(m.Triangles) == 0 {
		return Box{}
	}
	min := m.Triangles[0].V1.Position
	max := min
	for _, t := range m.Triangles {
		for _, v := range []Vertex{t.V1, t.V2, t.V3} {
			min = min.Min(v.Position)
			max = max.Max(v.Position)
		}
	}
	return Box{min, max}
}

// Simplify decimates the mesh to roughly factor of its triangle count,
// for cheap level-of-detail on distant bodies. Vertex normals are
// recomputed per face; texture coordinates do not survive decimation.
func (m *Mesh) Simplify(factor float64) *Mesh {
	in := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		in[i] = simplify.NewTriangle(
			simplifyVector(t.V1.Position),
			simplifyVector(t.V2.Position),
			simplifyVector(t.V3.Position))
	}
	out := simplify.NewMesh(in).Simplify(factor)
	triangles := make([]*Triangle, len(out.Triangles))
	for i, t := range out.Triangles {
		triangles[i] = NewTriangleForPoints(
			Vector{t.V1.X, t.V1.Y, t.V1.Z},
			Vector{t.V2.X, t.V2.Y, t.V2.Z},
			Vector{t.V3.X, t.V3.Y, t.V3.Z})
	}
	return NewTriangleMesh(triangles)
}

func simplifyVector(v Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// SmoothNormals averages normals across shared vertex positions, which
// a faceted OBJ export needs before it can light like a sphere.
func (m *Mesh) SmoothNormals() {
	sums := make(map[Vector]Vector)
	for _, t := range m.Triangles {
		n := t.Normal()
		sums[t.V1.Position] = sums[t.V1.Position].Add(n)
		sums[t.V2.Position] = sums[t.V2.Position].Add(n)
		sums[t.V3.Position] = sums[t.V3.Position].Add(n)
	}
	for _, t := range m.Triangles {
		t.V1.Normal = sums[t.V1.Position].Normalize()
		t.V2.Normal = sums[t.V2.Position].Normalize()
		t.V3.Normal = sums[t.V3.Position].Normalize()
	}
}

// NewSphere builds a unit UV sphere. Normals equal positions; texture
// coordinates follow the spherical parameterization.
func NewSphere(stacks, slices int) *Mesh {
	point := func(i, j int) Vertex {
		theta := float64(i) / float64(stacks) * math.Pi
		phi := float64(j) / float64(slices) * 2 * math.Pi
		p := Vector{
			math.Sin(theta) * math.Cos(phi),
			math.Cos(theta),
			math.Sin(theta) * math.Sin(phi)}
		return Vertex{
			Position: p,
			Normal:   p,
			Texcoord: Vector{float64(j) / float64(slices), 1 - float64(i)/float64(stacks), 0},
		}
	}
	var triangles []*Triangle
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			v00 := point(i, j)
			v10 := point(i+1, j)
			v01 := point(i, j+1)
			v11 := point(i+1, j+1)
			if i > 0 {
				triangles = append(triangles, &Triangle{v00, v10, v11})
			}
			if i < stacks-1 {
				triangles = append(triangles, &Triangle{v00, v11, v01})
			}
		}
	}
	return NewTriangleMesh(triangles)
}
