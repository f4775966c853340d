package cosmo

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(255, 255, 255)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-12)
}

func TestColorLerpIsNotClamped(t *testing.T) {
	a := RGB(100, 100, 100)
	b := RGB(200, 200, 200)

	over := a.Lerp(b, 2)
	assert.Greater(t, over.R, 1.0, "extrapolated channel should overshoot")

	under := a.Lerp(b, -1)
	assert.Less(t, under.R, 0.0, "extrapolated channel should undershoot")

	// The representation boundary absorbs both.
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, over.NRGBA())
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, under.NRGBA())
}

func TestColorScaleOverflowClamps(t *testing.T) {
	c := RGB(200, 150, 100).MulScalar(3)
	n := c.NRGBA()
	assert.Equal(t, uint8(255), n.R)
	assert.Equal(t, uint8(255), n.G)
	assert.Equal(t, uint8(255), n.B)
}

func TestColorScalePreservesAlpha(t *testing.T) {
	c := RGB(10, 20, 30).Alpha(0.5).MulScalar(2)
	assert.Equal(t, 0.5, c.A)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, RGB(255, 0, 0), HexColor("ff0000"))
	assert.Equal(t, RGB(255, 0, 0), HexColor("#ff0000"))
	assert.Equal(t, RGB(255, 255, 255), HexColor("fff"))
	c := HexColor("00000080")
	assert.InDelta(t, 128.0/255, c.A, 1e-12)
}

func TestRGBRoundTrip(t *testing.T) {
	c := RGB(245, 56, 121)
	n := c.NRGBA()
	assert.Equal(t, color.NRGBA{245, 56, 121, 255}, n)
}

func TestMakeColor(t *testing.T) {
	c := MakeColor(color.NRGBA{255, 0, 255, 255})
	assert.InDelta(t, 1, c.R, 1e-4)
	assert.InDelta(t, 0, c.G, 1e-4)
	assert.InDelta(t, 1, c.B, 1e-4)
}
