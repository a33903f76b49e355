package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnScaleIdentity(t *testing.T) {
	id := TurnScale{Scale: 1, Turn: 0}
	shape := Shape2{H: 100, W: 100}
	center := Vec2{X: 50, Y: 50}

	for _, p := range []Vec2{{X: 0, Y: 0}, {X: 99, Y: 3}, {X: 50, Y: 50}, {X: 17.5, Y: 81.25}} {
		got := id.Apply(p, center, shape)
		assert.InDelta(t, float64(p.X), float64(got.X), 1e-4)
		assert.InDelta(t, float64(p.Y), float64(got.Y), 1e-4)
	}
}

func TestDitherTransformWithIdenticalSubtransformsMatchesEither(t *testing.T) {
	ts := TurnScale{Scale: 1.2, Turn: 0.4}
	dither := DitherTransform{A: ts, B: ts}
	shape := Shape2{H: 64, W: 64}
	center := Vec2{X: 32, Y: 32}

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p := Vec2{X: float32(x), Y: float32(y)}
			want := ts.Apply(p, center, shape)
			got := dither.Apply(p, center, shape)
			assert.Equal(t, want, got)
		}
	}
}

func TestDitherTransformPicksByParity(t *testing.T) {
	a := TurnScale{Scale: 2, Turn: 0}
	b := TurnScale{Scale: 3, Turn: 0}
	dither := DitherTransform{A: a, B: b}
	shape := Shape2{H: 10, W: 10}
	center := Vec2{X: 0, Y: 0}

	even := dither.Apply(Vec2{X: 2, Y: 2}, center, shape) // parity 0 -> A
	odd := dither.Apply(Vec2{X: 3, Y: 2}, center, shape)  // parity 1 -> B

	assert.Equal(t, a.Apply(Vec2{X: 2, Y: 2}, center, shape), even)
	assert.Equal(t, b.Apply(Vec2{X: 3, Y: 2}, center, shape), odd)
}

func TestNegateWithProbabilityAlwaysScalesBy06(t *testing.T) {
	rng := NewMinstd(3)
	for i := 0; i < 50; i++ {
		turn := float32(1.0)
		got := negateWithProbability(turn, 0, rng) // p=0 never negates
		assert.InDelta(t, 0.6, float64(got), 1e-6)
	}
}
