// painter.go - the Painter orchestrator: owns every subsystem and drives one frame (C9)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "sync"

// Painter holds every subsystem participating in the render pipeline
// (painter/painter.rs Painter). All mutation happens behind mu, which the
// audio collaborator and the render driver both acquire - this is the
// serialization lock §5 requires between on_samples and on_render.
type Painter struct {
	mu sync.Mutex

	Settings Settings
	Library  *ModeLibrary
	Globals  *Globals

	img  *Image[Rgba]
	next *Image[Rgba]

	hub       *WarpMapHub
	extractor *FeatureExtractor

	spec      *WarpSpec
	warpMap   *WarpMap
	needsInit bool
}

// NewPainter builds a Painter for a fixed framebuffer shape, matching
// painter/painter.rs Painter::new's construction order exactly: globals
// first (seed=1), then settings sampling gf[] off the same RNG, then the
// mode library, then black framebuffers.
func NewPainter(fxw, fxh int) *Painter {
	g := NewGlobals(1)
	settings := NewSettings(fxw, fxh, g.Rand)
	library := NewModeLibrary()

	shape := Shape2{H: fxh, W: fxw}
	img := NewImage[Rgba](shape)
	next := NewImage[Rgba](shape)
	fillOpaqueBlack(img)
	fillOpaqueBlack(next)

	return &Painter{
		Settings:  settings,
		Library:   library,
		Globals:   g,
		img:       img,
		next:      next,
		hub:       NewWarpMapHub(),
		extractor: NewFeatureExtractor(),
		needsInit: true,
	}
}

func fillOpaqueBlack(img *Image[Rgba]) {
	for i := range img.Pix {
		img.Pix[i].A = 255
	}
}

// Framebuffer returns the current read-only framebuffer (§6 GPU collaborator
// contract: reads only, writes nothing back).
func (p *Painter) Framebuffer() *Image[Rgba] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.img
}

// CurrentSettings returns a snapshot of Settings for the GPU collaborator's
// CRT shader parameters (§6).
func (p *Painter) CurrentSettings() Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Settings
}

// OnSamples feeds one window of interleaved stereo PCM to the feature
// extractor. Must be called from the audio collaborator; acquires the same
// lock OnRender does so the two never interleave (§5).
func (p *Painter) OnSamples(wave []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.extractor.OnSamples(wave, &p.Settings, p.Globals)
}

// Close tears down the warp worker (§5 "Cancellation").
func (p *Painter) Close() {
	p.hub.Close()
}

// OnRender advances the frame clock, services the warp worker, and applies
// the fixed composite ordering of §4.5. Safe to call once per render tick.
func (p *Painter) OnRender() {
	p.mu.Lock()
	defer p.mu.Unlock()

	g := p.Globals

	g.Frame++
	fps := g.FPSAtLastModeSwitch
	if fps <= 0 {
		fps = 47
	}
	step := float32(1)
	if 47/fps < 1 {
		step = 47 / fps
	}
	g.FloatFrame += 1.6 * step

	g.FPS.Step()

	p.hub.Step(p.Settings, p.Library, g)
	if spec, wm, ok := p.hub.Fetch(); ok {
		logger.Info("new mode", "mode", spec.Mode, "waveform", spec.Waveform, "effects", spec.EffectMask.Count())
		p.spec = &spec
		p.warpMap = wm
		p.needsInit = true
	}

	if p.spec == nil {
		return
	}
	spec := p.spec
	mask := spec.EffectMask
	yLo, yHi := p.Settings.YRoi.Min, p.Settings.YRoi.Max

	if p.needsInit {
		p.needsInit = false
		if spec.Mode == 1 && g.Rand.NextBool() {
			NewSolarParticles(spec.Center, 500).Render(p.img, g.Rand)
		}
	}

	if mask.Has(EffectShade) {
		NewShadeBobs(spec.Center, g.Rand).Render(p.img, g.FloatFrame, g.Rand)
	}
	if mask.Has(EffectChasers) {
		NewTwoChasers(spec.Center, yLo, yHi).Render(p.img, g.FloatFrame)
	}
	if mask.Has(EffectBar) {
		NewSnackBar(spec.Center, yLo, yHi).Render(p.img, g.FloatFrame)
	}
	if mask.Has(EffectDots) {
		col := dottyChaserColor(g.FloatFrame)
		NewOneDottyChaser(spec.Center, col, yLo, yHi).Render(p.img, g.FloatFrame, &g.Chasers)
	}
	if mask.Has(EffectNuclide) {
		NewNuclide(spec.Center, p.Settings.Gf, g).Render(p.img)
	}
	if mask.Has(EffectGrid) {
		NewGrid(p.Settings.Fxw, yLo, yHi, g).Render(p.img)
	}
	if mask.Has(EffectSolar) {
		bp := p.Library.Blueprints[spec.Mode]
		count := int(float32(bp.SolarMax) * (0.5 + 0.5*sinf(float32(g.Frame)*0.05)))
		NewSolarParticles(spec.Center, count).Render(p.img, g.Rand)
	}

	if bp := p.Library.Blueprints[spec.Mode]; bp.CenterDwindle < 0.999 {
		NewDiminishCenter(spec.Center, bp.CenterDwindle, spec.Mode, yLo, yHi).Render(p.img)
	}

	if p.warpMap != nil {
		ProcessMap(p.img, p.next, p.warpMap, p.Settings.YRoi)
		p.img, p.next = p.next, p.img
	}

	NewBeatDots(spec.Center, p.Settings.Fxw, p.Settings.Gf, g).Render(p.img)

	RenderWaveform(p.img, spec.Center, spec.Mode, spec.Waveform, p.Settings, g)
}

// dottyChaserColor derives OneDottyChaser's per-frame head colour from the
// frame clock (fx/one_dotty_chaser.rs: three sines at a shared frequency,
// phase-offset per channel).
func dottyChaserColor(floatFrame float32) Rgba {
	t := floatFrame
	return Rgba{
		R: sat8(int32(127 + 126*sinf(t*0.0613+33))),
		G: sat8(int32(127 + 126*sinf(t*0.0713+33))),
		B: sat8(int32(127 + 126*sinf(t*0.0513+33))),
		A: 255,
	}
}
