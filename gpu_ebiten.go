// gpu_ebiten.go - Ebiten-backed window/GPU collaborator with a software CRT post-process

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenGPU is the Ebiten-backed WindowOutput (§6 "GPU collaborator").
// Each Draw pulls the Painter's current framebuffer, applies a software
// barrel/scanline/afterglow post-process driven by the live
// CRTShaderSettings, and uploads the result. A fragment shader is the
// teacher's (ebiten Kage) idiom for this kind of post-process, but this
// collaborator only ever reads one already-composited framebuffer and
// never blends multiple GPU-resident sources, so a CPU-side per-pixel
// pass is simpler to reason about and keeps the warp math in one place
// with the rest of the engine's fixed-point remap code (see DESIGN.md).
type EbitenGPU struct {
	width, height int
	source        FrameSource

	window *ebiten.Image

	mu        sync.Mutex
	scratch   []byte
	afterglow []float32

	closeRequested atomic.Bool
	vsyncChan      chan struct{}
}

// NewEbitenGPU builds a collaborator for a fixed fxw x fxh paint shape
// (§6: "the paint shape itself is fixed per-Painter").
func NewEbitenGPU(fxw, fxh int) *EbitenGPU {
	return &EbitenGPU{
		width:     fxw,
		height:    fxh,
		scratch:   make([]byte, fxw*fxh*4),
		afterglow: make([]float32, fxw*fxh*3),
		vsyncChan: make(chan struct{}, 1),
	}
}

// Run opens the window and blocks until the game loop exits (window close
// or RequestClose). source is read each Draw call.
func (e *EbitenGPU) Run(source FrameSource) error {
	e.source = source

	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("DEISS")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(e); err != nil && err != ebiten.Termination {
		return &GPUError{Operation: "run", Err: err}
	}
	return nil
}

// RequestClose asks the game loop to exit on its next Update.
func (e *EbitenGPU) RequestClose() {
	e.closeRequested.Store(true)
}

func (e *EbitenGPU) Update() error {
	if e.closeRequested.Load() || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

func (e *EbitenGPU) Draw(screen *ebiten.Image) {
	if e.window == nil {
		e.window = ebiten.NewImage(e.width, e.height)
	}
	if e.source == nil {
		return
	}

	fb := e.source.Framebuffer()
	settings := e.source.CurrentSettings()

	e.mu.Lock()
	e.compose(fb, settings.CRTShaderSettings)
	e.window.WritePixels(e.scratch)
	e.mu.Unlock()

	screen.DrawImage(e.window, nil)

	select {
	case e.vsyncChan <- struct{}{}:
	default:
	}
}

func (e *EbitenGPU) Layout(_, _ int) (int, int) {
	return e.width, e.height
}

// compose writes fb into the RGBA scratch buffer, sampling each
// destination pixel from a barrel-warped source row/column when
// warp_enabled, darkening every other scanline when scanlines_enabled, and
// blending toward the previous frame's channel values when
// afterglow_enabled (§6 "barrel distortion, scanlines, and an afterglow
// EMA between the previous and current frame").
func (e *EbitenGPU) compose(fb *Image[Rgba], crt CRTShaderSettings) {
	w, h := e.width, e.height
	cx, cy := float32(w)/2, float32(h)/2

	for y := 0; y < h; y++ {
		ny := (float32(y) - cy) / cy
		for x := 0; x < w; x++ {
			sx, sy := x, y
			if crt.WarpEnabled {
				nx := (float32(x) - cx) / cx
				r2 := nx*nx + ny*ny
				warped := Vec2{
					X: nx * (1 + crt.WarpStrength*r2*crt.WarpXY.X),
					Y: ny * (1 + crt.WarpStrength*r2*crt.WarpXY.Y),
				}
				sx = clampInt(int(warped.X*cx+cx), 0, w-1)
				sy = clampInt(int(warped.Y*cy+cy), 0, h-1)
			}

			px := fb.At(sx, sy)
			r, g, b := float32(px.R), float32(px.G), float32(px.B)

			if crt.ScanlinesEnabled && y%2 == 1 {
				scale := 1 - crt.ScanlineStrength
				r *= scale
				g *= scale
				b *= scale
			}

			idx3 := (y*w + x) * 3
			if crt.AfterglowEnabled {
				a := crt.Afterglow
				r = e.afterglow[idx3]*a + r*(1-a)
				g = e.afterglow[idx3+1]*a + g*(1-a)
				b = e.afterglow[idx3+2]*a + b*(1-a)
			}
			e.afterglow[idx3], e.afterglow[idx3+1], e.afterglow[idx3+2] = r, g, b

			idx4 := (y*w + x) * 4
			e.scratch[idx4] = sat8(int32(r))
			e.scratch[idx4+1] = sat8(int32(g))
			e.scratch[idx4+2] = sat8(int32(b))
			e.scratch[idx4+3] = 255
		}
	}
}
