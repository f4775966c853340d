package cosmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertMatrixInDelta(t *testing.T, expected, actual Matrix, delta float64) {
	t.Helper()
	e := [...]float64{
		expected.X00, expected.X01, expected.X02, expected.X03,
		expected.X10, expected.X11, expected.X12, expected.X13,
		expected.X20, expected.X21, expected.X22, expected.X23,
		expected.X30, expected.X31, expected.X32, expected.X33}
	a := [...]float64{
		actual.X00, actual.X01, actual.X02, actual.X03,
		actual.X10, actual.X11, actual.X12, actual.X13,
		actual.X20, actual.X21, actual.X22, actual.X23,
		actual.X30, actual.X31, actual.X32, actual.X33}
	for i := range e {
		assert.InDelta(t, e[i], a[i], delta, "element %d", i)
	}
}

func TestMatrixMulIdentity(t *testing.T) {
	m := Rotate(Vector{1, 2, 3}, 0.5).Mul(Translate(Vector{4, 5, 6}))
	assertMatrixInDelta(t, m, m.Mul(Identity()), 1e-12)
	assertMatrixInDelta(t, m, Identity().Mul(m), 1e-12)
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	m := Translate(Vector{1, -2, 3}).
		Mul(Rotate(Vector{0, 1, 0}, 0.8)).
		Mul(Scale(Vector{2, 3, 4}))
	assertMatrixInDelta(t, Identity(), m.Mul(m.Inverse()), 1e-9)
}

func TestNormalMatrixMatchesInverseTranspose(t *testing.T) {
	m := Rotate(Vector{1, 1, 0}, 0.6).Mul(Scale(Vector{2, 1, 0.5}))
	want := m.Inverse().Transpose()
	got := m.NormalMatrix()
	assert.InDelta(t, want.X00, got.X00, 1e-9)
	assert.InDelta(t, want.X01, got.X01, 1e-9)
	assert.InDelta(t, want.X02, got.X02, 1e-9)
	assert.InDelta(t, want.X10, got.X10, 1e-9)
	assert.InDelta(t, want.X11, got.X11, 1e-9)
	assert.InDelta(t, want.X12, got.X12, 1e-9)
	assert.InDelta(t, want.X20, got.X20, 1e-9)
	assert.InDelta(t, want.X21, got.X21, 1e-9)
	assert.InDelta(t, want.X22, got.X22, 1e-9)
}

func TestNormalMatrixSingularFallback(t *testing.T) {
	assertMatrixInDelta(t, Identity(), Scale(Vector{0, 0, 0}).NormalMatrix(), 0)
	assertMatrixInDelta(t, Identity(), Scale(Vector{1, 1, 0}).NormalMatrix(), 0)
}

func TestViewportMapsNDCCorners(t *testing.T) {
	vp := Viewport(0, 0, 100, 200)

	center := vp.MulPosition(Vector{0, 0, 0})
	assert.InDelta(t, 50, center.X, 1e-12)
	assert.InDelta(t, 100, center.Y, 1e-12)
	assert.InDelta(t, 0.5, center.Z, 1e-12)

	// NDC (-1, 1) is the top-left corner after the Y flip.
	topLeft := vp.MulPosition(Vector{-1, 1, -1})
	assert.InDelta(t, 0, topLeft.X, 1e-12)
	assert.InDelta(t, 0, topLeft.Y, 1e-12)
	assert.InDelta(t, 0, topLeft.Z, 1e-12)
}

func TestLookAtPlacesEyeOnAxis(t *testing.T) {
	view := LookAt(Vector{0, 0, 5}, Vector{}, Vector{0, 1, 0})
	p := view.MulPosition(Vector{0, 0, 0})
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)
	assert.InDelta(t, -5, p.Z, 1e-12)
}

func TestPerspectivePositiveWInFront(t *testing.T) {
	proj := Perspective(60, 1, 0.1, 100)
	// A point in front of a -Z looking camera gets positive w.
	w := proj.MulPositionW(Vector{0, 0, -5}).W
	assert.Greater(t, w, 0.0)
}

func TestMatrixFromMgl64(t *testing.T) {
	m := MatrixFromMgl64(mgl64.Translate3D(1, 2, 3))
	assert.Equal(t, 1.0, m.X03)
	assert.Equal(t, 2.0, m.X13)
	assert.Equal(t, 3.0, m.X23)
	assert.Equal(t, 1.0, m.X00)

	// Transforming a point must agree with mgl64's own result.
	rot := mgl64.HomogRotate3DY(0.9)
	p := mgl64.Vec4{0.3, -0.4, 0.5, 1}
	want := rot.Mul4x1(p)
	got := MatrixFromMgl64(rot).MulPositionW(Vector{0.3, -0.4, 0.5})
	assert.InDelta(t, want.X(), got.X, 1e-12)
	assert.InDelta(t, want.Y(), got.Y, 1e-12)
	assert.InDelta(t, want.Z(), got.Z, 1e-12)
	assert.InDelta(t, want.W(), got.W, 1e-12)
}
