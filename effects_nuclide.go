// effects_nuclide.go - the Nuclide radial-dot effect and its beat-gated twin (C7)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

// colorGen is the shared six-sine/cosine closed-form colour generator used
// by Nuclide and the waveform overlay (painter/wave.rs, fx/nuclide.rs):
// pairs of (sin, cos) terms driven by the per-Painter gf[] constants and a
// shared low-frequency wobble f, amplitude-scaled by amp and phase-shifted
// by phase.
func colorGen(gf [6]float32, f, t float32, amp [2]float32, phase [6]float32) [6]float32 {
	return [6]float32{
		amp[0] * sinf(t*gf[0]+phase[0]-f),
		amp[1] * cosf(t*gf[3]+phase[1]+f),
		amp[0] * sinf(t*gf[1]+phase[2]+f),
		amp[1] * cosf(t*gf[4]+phase[3]-f),
		amp[0] * sinf(t*gf[2]+phase[4]-f),
		amp[1] * cosf(t*gf[5]+phase[5]+f),
	}
}

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }

// nuclideWobble is the shared low-frequency f(t) term feeding colorGen
// (fx/nuclide.rs, painter/wave.rs): 7*sin(t*0.007+29) + 5*cos(t*0.0057+27).
func nuclideWobble(t float32) float32 {
	return 7*sinf(t*0.007+29) + 5*cosf(t*0.0057+27)
}

// Nuclide paints a ring of radial dots whose count, phase, and colour are
// resampled each spawn (§4.5, fx/nuclide.rs). NewNuclide is the
// always-spawning variant (gated 1-in-12 by the caller's effect roll);
// NewBeatDots is the volume-gated variant rendered every frame after the
// warp swap regardless of the effect mask (§4.7 step 4's "beat dots").
type Nuclide struct {
	Nodes int
	Center Vec2
	Phase  float32
	R      float32
	Rad    float32
	Col    [3]float32
}

// NewNuclide builds the mode-driven Nuclide spawn. One draw in twelve
// actually produces dots (§4.5: "skip 11/12 runs") — the remaining draws
// are a Nuclide with Nodes == 0, which renders nothing.
func NewNuclide(center Vec2, gf [6]float32, g *Globals) Nuclide {
	nodes := 0
	if g.Rand.NextIdx(12) == 0 {
		nodes = 3 + g.Rand.NextIdx(5)
	}
	phase := float32(g.Rand.NextIdx(1000))
	r := float32(3 + g.Rand.NextIdx(8))
	rad := float32(34 + g.Rand.NextIdx(8))

	t := g.FloatFrame
	f := nuclideWobble(t)
	dat := colorGen(gf, f, t, [2]float32{0.25, 0.25}, [6]float32{20, 17, 42, 26, 57, 35})
	col := [3]float32{0.50 + dat[0] + dat[1], 0.5 + dat[2] + dat[3], 0.5 + dat[4] + dat[5]}

	return Nuclide{Nodes: nodes, Center: center, Phase: phase, R: r, Rad: rad, Col: col}
}

// NewBeatDots builds the volume-gated twin: silent below 1.1x the narrow
// average volume (§4.5). At fxw == 320 the dot radius is capped at 7
// instead of 10 and the ring radius starts from 22 instead of 34.
func NewBeatDots(center Vec2, fxw int, gf [6]float32, g *Globals) Nuclide {
	nodes := 0
	if g.Vol.Current() > g.AvgVolNarrow*1.1 {
		nodes = 3 + g.Rand.NextIdx(5)
	}
	phase := float32(g.Rand.NextIdx(1000))
	rMax, radBase := float32(10), 34
	if fxw == 320 {
		rMax, radBase = 7, 22
	}
	r := clampF32(3+40*(g.Vol.Current()/g.AvgVolNarrow-1.1), 1, rMax)
	scale := float32(fxw) / 1024
	if scale < 1 {
		scale = 1
	}
	rad := float32(radBase+g.Rand.NextIdx(8)) * scale

	t := g.FloatFrame
	f := nuclideWobble(t)
	dat := colorGen(gf, f, t, [2]float32{0.21, 0.21}, [6]float32{20, 17, 42, 26, 57, 35})
	col := [3]float32{0.58 + dat[0] + dat[1], 0.5 + dat[2] + dat[3], 0.5 + dat[4] + dat[5]}

	return Nuclide{Nodes: nodes, Center: center, Phase: phase, R: r, Rad: rad, Col: col}
}

const nuclideHalfExtent = 10

func (n Nuclide) Render(img *Image[Rgba]) {
	if n.Nodes <= 0 {
		return
	}
	for node := 0; node < n.Nodes; node++ {
		theta := float32(node)/float32(n.Nodes)*tau + n.Phase
		s, c := math.Sincos(float64(theta))
		px := n.Center.X + n.Rad*float32(c)
		py := n.Center.Y + n.Rad*float32(s)
		for dy := -nuclideHalfExtent; dy < nuclideHalfExtent; dy++ {
			for dx := -nuclideHalfExtent; dx < nuclideHalfExtent; dx++ {
				val := (n.R - float32(math.Sqrt(float64(dx*dx+dy*dy)))) * 25
				if val <= 0 {
					continue
				}
				cx, cy := int(px)+dx, int(py)+dy
				if !inBounds(img, cx, cy) {
					continue
				}
				cur := img.At(cx, cy)
				img.Set(cx, cy, cur.SatAddFF3(val, n.Col))
			}
		}
	}
}

const tau = 2 * math.Pi

func inBounds(img *Image[Rgba], x, y int) bool {
	return x >= 0 && x < img.Shape.W && y >= 0 && y < img.Shape.H
}
