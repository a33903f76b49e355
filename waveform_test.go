package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLchRchOutOfRangeReturnsZero(t *testing.T) {
	buf := []float32{1, 2, 3, 4}
	assert.Equal(t, float32(1), lch(buf, 0))
	assert.Equal(t, float32(2), rch(buf, 0))
	assert.Equal(t, float32(0), lch(buf, -1))
	assert.Equal(t, float32(0), rch(buf, 10))
}

func testWaveformSettings() (Settings, *Globals) {
	g := NewGlobals(1)
	settings := NewSettings(64, 48, g.Rand)
	buf := make([]float32, RequiredBufferSize(settings.Fxw))
	for i := range buf {
		buf[i] = float32((i%200)-100) / 100
	}
	g.SoundBuffer = buf
	g.Vol.Push(0.5)
	return settings, g
}

// TestRenderWaveformAllCasesDoNotPanic sweeps every waveform id (including
// the mode==10 special case for waveform 1) to make sure each branch stays
// within its image bounds.
func TestRenderWaveformAllCasesDoNotPanic(t *testing.T) {
	for waveform := 1; waveform <= NumWaves; waveform++ {
		for _, mode := range []int{1, 6, 10, 12} {
			settings, g := testWaveformSettings()
			img := NewImage[Rgba](Shape2{H: settings.Fxh, W: settings.Fxw})
			center := Vec2{X: float32(settings.Fxw) / 2, Y: float32(settings.Fxh) / 2}

			assert.NotPanics(t, func() {
				RenderWaveform(img, center, mode, waveform, settings, g)
			}, "waveform=%d mode=%d", waveform, mode)
		}
	}
}

func TestRenderWaveformOnEmptySoundBufferIsNoOp(t *testing.T) {
	settings, g := testWaveformSettings()
	g.SoundBuffer = nil
	img := NewImage[Rgba](Shape2{H: settings.Fxh, W: settings.Fxw})
	before := make([]Rgba, len(img.Pix))
	copy(before, img.Pix)

	RenderWaveform(img, Vec2{}, 1, 1, settings, g)

	assert.Equal(t, before, img.Pix)
}

func TestRgbaFromF3Saturates(t *testing.T) {
	c := rgbaFromF3([3]float32{-5, 300, 128})
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(255), c.G)
	assert.Equal(t, uint8(128), c.B)
	assert.Equal(t, uint8(255), c.A)
}
