package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidFramebuffer(w, h int, c Rgba) *Image[Rgba] {
	img := NewImage[Rgba](Shape2{H: h, W: w})
	for i := range img.Pix {
		img.Pix[i] = c
	}
	return img
}

func TestComposeScanlinesDarkenOddRowsOnly(t *testing.T) {
	e := NewEbitenGPU(4, 4)
	fb := solidFramebuffer(4, 4, Rgba{R: 200, G: 200, B: 200, A: 255})
	crt := CRTShaderSettings{ScanlinesEnabled: true, ScanlineStrength: 0.5}

	e.compose(fb, crt)

	evenIdx := (0*4 + 0) * 4
	oddIdx := (1*4 + 0) * 4
	assert.Equal(t, byte(200), e.scratch[evenIdx])
	assert.Less(t, e.scratch[oddIdx], e.scratch[evenIdx], "odd rows must be darkened by scanlines")
}

func TestComposeWithEverythingDisabledIsPassthrough(t *testing.T) {
	e := NewEbitenGPU(3, 3)
	fb := solidFramebuffer(3, 3, Rgba{R: 10, G: 20, B: 30, A: 255})
	crt := CRTShaderSettings{} // all disabled

	e.compose(fb, crt)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			idx := (y*3 + x) * 4
			assert.Equal(t, byte(10), e.scratch[idx])
			assert.Equal(t, byte(20), e.scratch[idx+1])
			assert.Equal(t, byte(30), e.scratch[idx+2])
			assert.Equal(t, byte(255), e.scratch[idx+3])
		}
	}
}

func TestComposeAfterglowBlendsTowardPreviousFrame(t *testing.T) {
	e := NewEbitenGPU(2, 2)
	crt := CRTShaderSettings{AfterglowEnabled: true, Afterglow: 0.5}

	bright := solidFramebuffer(2, 2, Rgba{R: 255, A: 255})
	e.compose(bright, crt)
	firstR := e.scratch[0]
	assert.Equal(t, byte(127), firstR) // 0*0.5 + 255*0.5 from the zeroed afterglow buffer

	dark := solidFramebuffer(2, 2, Rgba{R: 0, A: 255})
	e.compose(dark, crt)
	secondR := e.scratch[0]

	assert.Greater(t, secondR, byte(0), "afterglow should keep some of the previous bright frame")
	assert.Less(t, secondR, byte(255))
}

func TestNewEbitenGPUReportsLayout(t *testing.T) {
	e := NewEbitenGPU(640, 480)
	w, h := e.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestRequestCloseMakesUpdateTerminate(t *testing.T) {
	e := NewEbitenGPU(4, 4)
	e.RequestClose()
	err := e.Update()
	assert.Error(t, err)
}
