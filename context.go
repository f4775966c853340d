package cosmo

import (
	"image"
	"math"
	"runtime"
	"sync"
)

// Context rasterizes meshes through the shading pipeline: each triangle
// is pushed through TransformVertex, scan-converted, and every covered
// pixel becomes a Fragment handed to Shade. Fragments are produced on
// as many goroutines as there are CPUs; the pipeline itself is pure, so
// the only synchronization is the striped pixel locks.
type Context struct {
	Width       int
	Height      int
	ColorBuffer *image.NRGBA
	DepthBuffer []float64
	ClearColor  Color

	// Light is the direction toward the light source, normalized.
	// Emissive bodies ignore it.
	Light Vector

	ReadDepth  bool
	WriteDepth bool
	WriteColor bool
	AlphaBlend bool
	DepthBias  float64

	// Workers caps the goroutines used per mesh draw; 0 means one per
	// logical CPU.
	Workers int

	locks []sync.Mutex
}

func NewContext(width, height int) *Context {
	dc := &Context{}
	dc.Width = width
	dc.Height = height
	dc.ColorBuffer = image.NewNRGBA(image.Rect(0, 0, width, height))
	dc.DepthBuffer = make([]float64, width*height)
	dc.ClearColor = Transparent
	dc.Light = Vector{0.4, 0.4, 1}.Normalize()
	dc.ReadDepth = true
	dc.WriteDepth = true
	dc.WriteColor = true
	dc.AlphaBlend = true
	dc.DepthBias = 0
	dc.locks = make([]sync.Mutex, 256)
	dc.ClearDepthBuffer()
	return dc
}

func (dc *Context) Image() image.Image {
	return dc.ColorBuffer
}

// ClearColorBufferWith uses fast memory copy to clear the buffer.
func (dc *Context) ClearColorBufferWith(c Color) {
	nrgba := c.NRGBA()
	row := make([]uint8, dc.Width*4)
	for x := 0; x < dc.Width; x++ {
		i := x * 4
		row[i+0] = nrgba.R
		row[i+1] = nrgba.G
		row[i+2] = nrgba.B
		row[i+3] = nrgba.A
	}
	pix := dc.ColorBuffer.Pix
	stride := dc.ColorBuffer.Stride
	for y := 0; y < dc.Height; y++ {
		copy(pix[y*stride:], row)
	}
}

func (dc *Context) ClearColorBuffer() {
	dc.ClearColorBufferWith(dc.ClearColor)
}

func (dc *Context) ClearDepthBuffer() {
	for i := range dc.DepthBuffer {
		dc.DepthBuffer[i] = math.MaxFloat64
	}
}

func edge(a, b, c Vector) float64 {
	return (b.X-c.X)*(a.Y-c.Y) - (b.Y-c.Y)*(a.X-c.X)
}

func (dc *Context) rasterize(v0, v1, v2 Vertex, u *Uniforms) {
	s0 := v0.Output.Vector()
	s1 := v1.Output.Vector()
	s2 := v2.Output.Vector()

	min := s0.Min(s1.Min(s2)).Floor()
	max := s0.Max(s1.Max(s2)).Ceil()

	x0 := ClampInt(int(min.X), 0, dc.Width-1)
	x1 := ClampInt(int(max.X), 0, dc.Width-1)
	y0 := ClampInt(int(min.Y), 0, dc.Height-1)
	y1 := ClampInt(int(max.Y), 0, dc.Height-1)

	area := edge(s0, s1, s2)
	if area == 0 {
		return
	}

	p := Vector{float64(x0) + 0.5, float64(y0) + 0.5, 0}
	w00 := edge(s1, s2, p)
	w01 := edge(s2, s0, p)
	w02 := edge(s0, s1, p)
	a01 := s1.Y - s0.Y
	b01 := s0.X - s1.X
	a12 := s2.Y - s1.Y
	b12 := s1.X - s2.X
	a20 := s0.Y - s2.Y
	b20 := s2.X - s0.X

	ra := 1 / area
	r0 := 1 / v0.Output.W
	r1 := 1 / v1.Output.W
	r2 := 1 / v2.Output.W

	stride := dc.Width
	pix := dc.ColorBuffer.Pix
	emissive := u.Body.Emissive()

	for y := y0; y <= y1; y++ {
		w0 := w00
		w1 := w01
		w2 := w02
		for x := x0; x <= x1; x++ {
			b0 := w0 * ra
			b1 := w1 * ra
			b2 := w2 * ra

			if b0 >= 0 && b1 >= 0 && b2 >= 0 {
				i := y*stride + x
				z := b0*s0.Z + b1*s1.Z + b2*s2.Z
				bz := z + dc.DepthBias

				// Early depth test
				if !dc.ReadDepth || bz <= dc.DepthBuffer[i] {
					b := VectorW{b0 * r0, b1 * r1, b2 * r2, 0}
					b.W = 1 / (b.X + b.Y + b.Z)
					v := InterpolateVertexes(v0, v1, v2, b)

					intensity := 1.0
					if !emissive {
						n := v.TransformedNormal.Normalize()
						intensity = math.Max(n.Dot(dc.Light), 0)
					}
					colorVal := Shade(Fragment{v.Position, intensity}, u)

					if colorVal.A > 0 {
						lock := &dc.locks[(x+y)&255]
						lock.Lock()
						if !dc.ReadDepth || bz <= dc.DepthBuffer[i] {
							if dc.WriteDepth {
								dc.DepthBuffer[i] = z
							}
							if dc.WriteColor {
								dc.setPixel(colorVal, pix, i*4)
							}
						}
						lock.Unlock()
					}
				}
			}
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w00 += b12
		w01 += b20
		w02 += b01
	}
}

// Inlined pixel write for speed.
func (dc *Context) setPixel(c Color, pix []uint8, i int) {
	if dc.AlphaBlend && c.A < 1 {
		sr, sg, sb, sa := c.NRGBA().RGBA()
		a := (0xffff - sa) * 0x101

		dr := uint32(pix[i+0])
		dg := uint32(pix[i+1])
		db := uint32(pix[i+2])
		da := uint32(pix[i+3])

		pix[i+0] = uint8((dr*a/0xffff + sr) >> 8)
		pix[i+1] = uint8((dg*a/0xffff + sg) >> 8)
		pix[i+2] = uint8((db*a/0xffff + sb) >> 8)
		pix[i+3] = uint8((da*a/0xffff + sa) >> 8)
	} else {
		nrgba := c.NRGBA()
		pix[i+0] = nrgba.R
		pix[i+1] = nrgba.G
		pix[i+2] = nrgba.B
		pix[i+3] = nrgba.A
	}
}

// DrawTriangle transforms one triangle and rasterizes it. Geometry
// behind the camera is dropped whole; triangle clipping is outside this
// pipeline's contract.
func (dc *Context) DrawTriangle(t *Triangle, u *Uniforms) {
	v1 := TransformVertex(t.V1, u)
	v2 := TransformVertex(t.V2, u)
	v3 := TransformVertex(t.V3, u)
	if v1.Output.W <= 0 || v2.Output.W <= 0 || v3.Output.W <= 0 {
		return
	}
	dc.rasterize(v1, v2, v3, u)
}

// DrawMesh shades a mesh with one worker per logical CPU. Uniforms are
// shared read-only across all workers.
func (dc *Context) DrawMesh(mesh *Mesh, u *Uniforms) {
	wn := dc.Workers
	if wn <= 0 {
		wn = runtime.NumCPU()
	}
	var wg sync.WaitGroup
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			defer wg.Done()
			for i := wi; i < len(mesh.Triangles); i += wn {
				dc.DrawTriangle(mesh.Triangles[i], u)
			}
		}(wi)
	}
	wg.Wait()
}
