// transform_radial.go - radial-scale family transforms (modes 4, 5, 8, 9)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

// TurnRadialLinear is mode 4: turn plus a scale that grows linearly with
// distance from center (§4.2: scale(p) = 0.9 + ‖p‖·0.00035).
type TurnRadialLinear struct {
	Turn float32
}

func (t TurnRadialLinear) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	rot := RotFromAngle(t.Turn)
	return applyOffset(pi, center, func(rel Vec2) Vec2 {
		scale := 0.9 + rel.Norm()*0.00035
		return rot.Transform(rel).Scale(scale)
	})
}

// TurnRadialNuclideAware is mode 5: scale = (f2 - f1*r' - 1) + 1, with
// r' = sqrt(r) when NuclidePresent is set, else 1.7*r (§4.2 table).
// NuclidePresent is fixed when the transform is built (mode5Tf always sets
// it); it does not follow the per-frame Nuclide effect.
type TurnRadialNuclideAware struct {
	Turn           float32
	F1, F2         float32
	NuclidePresent bool
}

func (t TurnRadialNuclideAware) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	rot := RotFromAngle(t.Turn)
	return applyOffset(pi, center, func(rel Vec2) Vec2 {
		r := rel.Norm() / 200
		if t.NuclidePresent {
			r = float32(math.Sqrt(float64(r)))
		} else {
			r = 1.7 * r
		}
		scale := (t.F2 - t.F1*r - 1) + 1
		return rot.Transform(rel).Scale(scale)
	})
}

// TurnRadialOscillatory is mode 8: scale = 0.85 + 0.1*sin(f1*sqrt(r))
// (§4.2 table).
type TurnRadialOscillatory struct {
	Turn float32
	F1   float32
}

func (t TurnRadialOscillatory) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	rot := RotFromAngle(t.Turn)
	return applyOffset(pi, center, func(rel Vec2) Vec2 {
		r := rel.Norm()
		scale := 0.85 + 0.1*float32(math.Sin(float64(t.F1*float32(math.Sqrt(float64(r))))))
		return rot.Transform(rel).Scale(scale)
	})
}

// TurnRadialFade is mode 9: (f1 - r*f2 - 1) + 1 with f1≈0.98, f2≈0.001
// (§4.2 table).
type TurnRadialFade struct {
	Turn   float32
	F1, F2 float32
}

func (t TurnRadialFade) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	rot := RotFromAngle(t.Turn)
	return applyOffset(pi, center, func(rel Vec2) Vec2 {
		r := rel.Norm()
		scale := (t.F1 - r*t.F2 - 1) + 1
		return rot.Transform(rel).Scale(scale)
	})
}
