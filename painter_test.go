package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPainterFramebufferInvariants covers §8 invariants 1-2: the framebuffer
// shape never changes across the Painter's lifetime and every pixel's alpha
// stays 255.
func TestPainterFramebufferInvariants(t *testing.T) {
	p := NewPainter(16, 12)
	defer p.Close()

	fb := p.Framebuffer()
	assert.Equal(t, Shape2{H: 12, W: 16}, fb.Shape)
	for _, px := range fb.Pix {
		assert.Equal(t, uint8(255), px.A)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		p.OnRender()
		time.Sleep(time.Millisecond)
	}

	fb = p.Framebuffer()
	assert.Equal(t, Shape2{H: 12, W: 16}, fb.Shape)
	for _, px := range fb.Pix {
		assert.Equal(t, uint8(255), px.A)
	}
}

// TestPainterOnSamplesOnSilenceDoesNotPanic covers the cold-start scenario
// end to end: feeding silence through the full Painter before any mode has
// been selected must not panic.
func TestPainterOnSamplesOnSilenceDoesNotPanic(t *testing.T) {
	p := NewPainter(16, 12)
	defer p.Close()

	silence := make([]float32, RequiredBufferSize(16))
	assert.NotPanics(t, func() {
		p.OnSamples(silence)
		p.OnRender()
	})
}

// TestPainterEventuallySelectsAMode drives OnRender until the warp worker
// installs a first WarpSpec, then checks the mode/waveform/effect mask
// invariants hold on whatever got picked.
func TestPainterEventuallySelectsAMode(t *testing.T) {
	p := NewPainter(16, 12)
	defer p.Close()

	deadline := time.Now().Add(3 * time.Second)
	for p.spec == nil && time.Now().Before(deadline) {
		p.OnRender()
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, p.spec, "a mode should have been selected within 3s")

	assert.GreaterOrEqual(t, p.spec.Mode, 1)
	assert.LessOrEqual(t, p.spec.Mode, ModeCount)
	assert.GreaterOrEqual(t, p.spec.Waveform, 1)
	assert.LessOrEqual(t, p.spec.Waveform, NumWaves)
	if p.spec.EffectMask.Has(EffectGrid) {
		assert.False(t, p.spec.EffectMask.Has(EffectBar))
	}
}

// TestPainterCloseShutsDownWorker ensures Close tears down
// the warp worker goroutine cleanly (§5 Cancellation).
func TestPainterCloseShutsDownWorker(t *testing.T) {
	p := NewPainter(8, 8)
	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Painter.Close did not return")
	}
}
