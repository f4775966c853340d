package cosmo

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/nfnt/resize"
)

// Scene drives the pipeline for a frame: it owns the camera, the noise
// field and the drawable objects, builds one read-only Uniforms
// snapshot per object per frame, and renders supersampled before
// downscaling to the output size.
type Scene struct {
	Context *Context
	Objects []*Object

	Eye, Center, Up Vector
	Fovy            float64
	Near, Far       float64

	Noise NoiseField

	width, height, scale int
}

// NewScene builds a scene rendering at width x height, internally
// supersampled by scale.
func NewScene(width, height, scale int, noise NoiseField) *Scene {
	if scale < 1 {
		scale = 1
	}
	return &Scene{
		Context: NewContext(width*scale, height*scale),
		Eye:     Vector{0, 0, 5},
		Center:  Vector{},
		Up:      Vector{0, 1, 0},
		Fovy:    45,
		Near:    0.1,
		Far:     100,
		Noise:   noise,
		width:   width,
		height:  height,
		scale:   scale,
	}
}

func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

func (s *Scene) AddObjects(objects []*Object) {
	s.Objects = append(s.Objects, objects...)
}

// uniformsFor snapshots the frame state for one object. The snapshot is
// immutable for the duration of the draw and shared by every worker.
func (s *Scene) uniformsFor(o *Object, time float64) *Uniforms {
	aspect := float64(s.width) / float64(s.height)
	return &Uniforms{
		Model:      o.Matrix,
		View:       LookAt(s.Eye, s.Center, s.Up),
		Projection: Perspective(s.Fovy, aspect, s.Near, s.Far),
		Viewport:   Viewport(0, 0, float64(s.Context.Width), float64(s.Context.Height)),
		Time:       time,
		Noise:      s.Noise,
		Body:       o.Body,
	}
}

// RenderFrame renders every object at the given time and returns the
// finished frame.
func (s *Scene) RenderFrame(time float64) image.Image {
	s.Context.ClearColorBuffer()
	s.Context.ClearDepthBuffer()
	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("cosmo: object with nil mesh skipped")
			continue
		}
		s.Context.DrawMesh(o.Mesh, s.uniformsFor(o, time))
	}
	im := s.Context.Image()
	if s.scale > 1 {
		im = resize.Resize(uint(s.width), uint(s.height), im, resize.Bilinear)
	}
	return im
}

// WritePNG renders a frame and encodes it to the writer.
func (s *Scene) WritePNG(w io.Writer, time float64) error {
	if err := png.Encode(w, s.RenderFrame(time)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders a frame to a file.
func (s *Scene) SavePNG(path string, time float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	return s.WritePNG(file, time)
}

// Draw is the fire-and-forget variant: failures are logged, not
// returned.
func (s *Scene) Draw(path string, time float64) {
	if err := s.SavePNG(path, time); err != nil {
		log.Printf("cosmo: could not draw scene: %v", err)
	}
}
