package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinstdIsDeterministicForASeed(t *testing.T) {
	a := NewMinstd(1)
	b := NewMinstd(1)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestMinstdZeroSeedRemapsToOne(t *testing.T) {
	zero := NewMinstd(0)
	one := NewMinstd(1)
	assert.Equal(t, one.Next(), zero.Next())
}

func TestMinstdNextIdxBounds(t *testing.T) {
	rng := NewMinstd(7)
	for i := 0; i < 500; i++ {
		v := rng.NextIdx(17)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 17)
	}
	assert.Equal(t, 0, rng.NextIdx(0))
}

func TestMinstdNext01PromRange(t *testing.T) {
	rng := NewMinstd(42)
	for i := 0; i < 500; i++ {
		v := rng.Next01Prom()
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestMinstdNextRangeFBounds(t *testing.T) {
	rng := NewMinstd(99)
	for i := 0; i < 500; i++ {
		v := rng.NextRangeF(0.5, 3.5)
		assert.GreaterOrEqual(t, v, float32(0.5))
		assert.Less(t, v, float32(3.5))
	}
}
