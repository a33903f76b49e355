// ring_volbuffer.go - fixed-capacity circular buffer of running volume samples

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

// VolBufferCapacity is the fixed ring size for volume history (§3).
const VolBufferCapacity = 120

// VolBuffer is a circular buffer of f32 samples with a maintained running
// total. The total is recomputed from scratch on every wrap to bound
// floating point drift to within one full wrap (§3 invariant, §8 invariant 6).
type VolBuffer struct {
	samples [VolBufferCapacity]float32
	count   int
	head    int // index of the next write
	total   float32
}

// Push appends a sample, evicting the oldest on wrap.
func (v *VolBuffer) Push(sample float32) {
	if v.count < VolBufferCapacity {
		v.samples[v.head] = sample
		v.total += sample
		v.count++
		v.head = (v.head + 1) % VolBufferCapacity
		return
	}

	v.samples[v.head] = sample
	v.head = (v.head + 1) % VolBufferCapacity

	// Wrapped: recompute the total from scratch to defeat drift.
	var total float32
	for _, s := range v.samples {
		total += s
	}
	v.total = total
}

// Current returns the most recently pushed sample, or 0 if empty.
func (v *VolBuffer) Current() float32 {
	if v.count == 0 {
		return 0
	}
	idx := (v.head - 1 + VolBufferCapacity) % VolBufferCapacity
	return v.samples[idx]
}

// Mean returns the running mean using the maintained total.
func (v *VolBuffer) Mean() float32 {
	if v.count == 0 {
		return 0
	}
	return v.total / float32(v.count)
}

// Variance returns the population variance over the stored samples.
func (v *VolBuffer) Variance() float32 {
	if v.count == 0 {
		return 0
	}
	mean := v.Mean()
	var sum float32
	for s := range v.iterValues() {
		d := s - mean
		sum += d * d
	}
	return sum / float32(v.count)
}

// StdDev returns sqrt(Variance), floored at 0.1 by callers that divide by it
// (§4.1 "all numerics use f32 ... division uses max(0.1, std_dev)").
func (v *VolBuffer) StdDev() float32 {
	return float32(math.Sqrt(float64(v.Variance())))
}

// iterValues yields stored samples oldest-to-newest.
func (v *VolBuffer) iterValues() func(func(float32) bool) {
	return func(yield func(float32) bool) {
		if v.count == 0 {
			return
		}
		start := 0
		if v.count == VolBufferCapacity {
			start = v.head
		}
		for i := 0; i < v.count; i++ {
			idx := (start + i) % VolBufferCapacity
			if !yield(v.samples[idx]) {
				return
			}
		}
	}
}

// Iter returns the stored samples oldest-to-newest as a slice.
func (v *VolBuffer) Iter() []float32 {
	out := make([]float32, 0, v.count)
	for s := range v.iterValues() {
		out = append(out, s)
	}
	return out
}

// IterDifferences returns consecutive differences (newer - older), one
// shorter than Iter.
func (v *VolBuffer) IterDifferences() []float32 {
	vals := v.Iter()
	if len(vals) < 2 {
		return nil
	}
	out := make([]float32, len(vals)-1)
	for i := 1; i < len(vals); i++ {
		out[i-1] = vals[i] - vals[i-1]
	}
	return out
}

// Len returns the number of samples currently stored (<= VolBufferCapacity).
func (v *VolBuffer) Len() int {
	return v.count
}
