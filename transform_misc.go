// transform_misc.go - potential, noise, and piecewise transforms (modes 6, 7, 10, 12)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

// AttractorKind is one of the three point-source behaviours mode 6 composes.
type AttractorKind int

const (
	AttractorPull AttractorKind = iota
	AttractorSwirlPositive
	AttractorSwirlNegative
)

// Attractor is one of mode 6's five random point sources (§4.2 table).
type Attractor struct {
	Pos  Vec2
	Kind AttractorKind
}

// FiveSourcePotential is mode 6: five random attractor centers, each
// pulling, or swirling clockwise/counter-clockwise; displacement is the
// weighted sum of each source's contribution, normalized by the sum of
// weights, with a constant (-0.1, 0.6) bias added (§4.2 table). Operates
// on absolute pi per the mode-6/10/12 exception in §4.3 step 2.
type FiveSourcePotential struct {
	Sources [5]Attractor
}

func (t FiveSourcePotential) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	var sumVec Vec2
	var sumWeight float32
	for _, src := range t.Sources {
		delta := src.Pos.Sub(pi)
		distSq := delta.X*delta.X + delta.Y*delta.Y
		weight := 1 / (distSq + 0.1)

		var vec Vec2
		switch src.Kind {
		case AttractorPull:
			vec = delta
		case AttractorSwirlPositive:
			vec = Vec2{X: -delta.Y, Y: delta.X}
		case AttractorSwirlNegative:
			vec = Vec2{X: delta.Y, Y: -delta.X}
		}
		sumVec = sumVec.Add(vec.Scale(weight))
		sumWeight += weight
	}
	if sumWeight == 0 {
		sumWeight = 1
	}
	displacement := sumVec.Scale(1 / sumWeight).Add(Vec2{X: -0.1, Y: 0.6})
	return pi.Add(displacement)
}

// noiseTableSize is the fixed spatial noise lookup length mode 7 indexes by
// (x+1000) + (y+1000)*2000 (§4.2 table).
const noiseTableSize = 2345

// TurnRadialNoise is mode 7: turn+radial scale whose scalar factor has a
// per-pixel spatial noise term added on top, looked up from a table
// generated once at mode-switch time from the shared RNG stream
// (painter/mode_pixel_transforms.rs' mode_7_tf — the noise draws are part
// of the same Minstd sequence as every other per-mode parameter, so the
// table must be built at tf_gen time, not lazily).
type TurnRadialNoise struct {
	Turn      float32
	F1, F2    float32
	NoiseTable [noiseTableSize]float32
}

// Its table is populated by mode_library.go's mode7Tf, in the exact RNG
// draw order the original uses (table before the turn-sign draw).

func (t TurnRadialNoise) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	rot := RotFromAngle(t.Turn)
	return applyOffset(pi, center, func(rel Vec2) Vec2 {
		r := rel.Norm() * t.F2
		scale := (t.F1 - r - 1) + 1
		idx := (int(pi.X) + 1000) + (int(pi.Y)+1000)*2000
		idx = ((idx % noiseTableSize) + noiseTableSize) % noiseTableSize
		scale += t.NoiseTable[idx]
		return rot.Transform(rel).Scale(scale)
	})
}

// HorizontalStretchByY is mode 10: p' = ((p.x-cx)*(1.03+0.03*p.y/shape.y)+cx,
// p.y*1.04) (§4.2 table). Absolute-pi mode.
type HorizontalStretchByY struct{}

func (t HorizontalStretchByY) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	newX := (pi.X-center.X)*(1.03+0.03*pi.Y/float32(shape.H)) + center.X
	newY := pi.Y * 1.04
	return Vec2{X: newX, Y: newY}
}

// PiecewiseCentralPinch is mode 12: nx = p.x - cx; dx is -sqrt(-nx)+0.9 for
// nx<-0.5, sqrt(nx)-0.9 for nx>0.5, and 0 otherwise (§4.2 table).
// Absolute-pi mode; y is untouched.
type PiecewiseCentralPinch struct{}

func (t PiecewiseCentralPinch) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	nx := pi.X - center.X
	var dx float32
	switch {
	case nx < -0.5:
		dx = -float32(math.Sqrt(float64(-nx))) + 0.9
	case nx > 0.5:
		dx = float32(math.Sqrt(float64(nx))) - 0.9
	default:
		dx = 0
	}
	return Vec2{X: pi.X + dx, Y: pi.Y}
}
