// transform_turnscale.go - turn+scale family transforms (modes 1, 2, 3, 11)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// TurnScale rotates a point by Turn radians about the origin then scales it
// — the workhorse of modes 2, 3, and the two halves of the dithered modes
// 1 and 11 (§4.2). TurnScale{Scale: 1, Turn: 0} is the identity (§8 law).
type TurnScale struct {
	Scale float32
	Turn  float32
}

func (t TurnScale) Apply(pi Vec2, center Vec2, shape Shape2) Vec2 {
	rot := RotFromAngle(t.Turn)
	return applyOffset(pi, center, func(rel Vec2) Vec2 {
		return rot.Transform(rel).Scale(t.Scale)
	})
}

// NewDitherTurnScale builds a dithered turn+scale pair: two TurnScale
// sub-transforms with the given scale, the second turn negated with
// probability negateProb. mode1Tf and mode11Tf build their DitherTransform
// directly rather than through this helper.
func NewDitherTurnScale(scale, turnA, turnB float32, negateProb float32, rng *Minstd) DitherTransform {
	if rng.Next01Prom() < negateProb {
		turnB = -turnB
	}
	return DitherTransform{
		A: TurnScale{Scale: scale, Turn: turnA},
		B: TurnScale{Scale: scale, Turn: turnB},
	}
}
