package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolBufferMeanWithinCapacity(t *testing.T) {
	var v VolBuffer
	v.Push(1)
	v.Push(2)
	v.Push(3)
	assert.Equal(t, 3, v.Len())
	assert.InDelta(t, 2.0, float64(v.Mean()), 1e-6)
	assert.Equal(t, float32(3), v.Current())
}

func TestVolBufferTotalDriftBoundedAcrossWraps(t *testing.T) {
	var v VolBuffer
	for i := 0; i < VolBufferCapacity*5; i++ {
		v.Push(float32(i%7) + 0.25)
	}

	var want float32
	for _, s := range v.Iter() {
		want += s
	}
	got := v.Mean() * float32(v.Len())
	assert.InDelta(t, float64(want), float64(got), 1e-2,
		"running total must never drift by more than one full wrap's recompute")
}

func TestVolBufferIterDifferences(t *testing.T) {
	var v VolBuffer
	v.Push(1)
	v.Push(4)
	v.Push(2)
	diffs := v.IterDifferences()
	assert.Equal(t, []float32{3, -2}, diffs)
}

func TestVolBufferEmptyIsZeroNotNaN(t *testing.T) {
	var v VolBuffer
	assert.Equal(t, float32(0), v.Current())
	assert.Equal(t, float32(0), v.Mean())
	assert.Equal(t, float32(0), v.Variance())
	assert.Equal(t, float32(0), v.StdDev())
}
