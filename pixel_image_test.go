package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageAtSetRoundTrip(t *testing.T) {
	img := NewImage[Rgba](Shape2{H: 4, W: 3})
	assert.Equal(t, 12, img.Len())

	want := Rgba{R: 10, G: 20, B: 30, A: 255}
	img.Set(2, 3, want)
	assert.Equal(t, want, img.At(2, 3))
}

func TestRgbaScaleFloorsAndSaturates(t *testing.T) {
	c := Rgba{R: 200, G: 10, B: 0, A: 255}
	assert.Equal(t, uint8(100), c.Scale(0.5).R)
	assert.Equal(t, uint8(255), Rgba{R: 200}.SatAdd(Rgba{R: 200}).R)
}

func TestRot2PreservesNorm(t *testing.T) {
	r := RotFromAngle(1.3)
	for _, p := range []Vec2{{X: 3, Y: 4}, {X: -1, Y: 7}, {X: 0, Y: 0}} {
		got := r.Transform(p)
		assert.InDelta(t, float64(p.Norm()), float64(got.Norm()), 1e-3)
	}
}

func TestRotFromAngleMatchesMathSincos(t *testing.T) {
	r := RotFromAngle(0.75)
	s, c := math.Sincos(0.75)
	assert.InDelta(t, c, float64(r.Cos), 1e-6)
	assert.InDelta(t, s, float64(r.Sin), 1e-6)
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 0, clampInt(-5, 0, 10))
	assert.Equal(t, 10, clampInt(50, 0, 10))
	assert.Equal(t, 5, clampInt(5, 0, 10))
	assert.Equal(t, float32(0), clampF32(-1, 0, 1))
	assert.Equal(t, float32(1), clampF32(5, 0, 1))
}
