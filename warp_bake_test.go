package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func identitySettings(fxw, fxh int) Settings {
	return Settings{Fxw: fxw, Fxh: fxh, YRoi: YRoi{Min: 0, Max: fxh}}
}

func TestBakeIndexesInBounds(t *testing.T) {
	settings := identitySettings(40, 30)
	transform := TurnScale{Scale: 1.7, Turn: 0.9}
	wm := Bake(settings, Vec2{X: 20, Y: 15}, 1, 0.8, transform)

	assert.Equal(t, 40*30, wm.Len())
	for _, wp := range wm.Pix {
		assert.GreaterOrEqual(t, wp.Index, uint32(0))
		assert.Less(t, wp.Index, uint32(40*30))
	}
}

// TestBakeProcessMapIdentityWithDampingZero covers the identity law: with
// transform=identity (TurnScale{1,0}) the bake maps every in-range ROI
// pixel back onto itself, up to the weightsum_res_adjusted/256 dimming
// (§8, preserved literally — see DESIGN.md).
func TestBakeProcessMapIdentityWithDampingZero(t *testing.T) {
	fxw, fxh := 20, 30
	settings := Settings{Fxw: fxw, Fxh: fxh, YRoi: YRoi{Min: 5, Max: 25}}
	id := TurnScale{Scale: 1, Turn: 0}
	wm := Bake(settings, Vec2{X: 10, Y: 15}, 1, 0, id)

	src := NewImage[Rgba](Shape2{H: fxh, W: fxw})
	dst := NewImage[Rgba](Shape2{H: fxh, W: fxw})
	for i := range src.Pix {
		src.Pix[i] = Rgba{R: 200, G: 100, B: 50, A: 255}
	}

	ProcessMap(src, dst, wm, settings.YRoi)

	// Rows comfortably inside the warp's own row-clamp [2, fxh-3] and the
	// ROI both self-map exactly: dx=dy=0, so each channel is floor(v*252/256).
	want := Rgba{
		R: uint8(uint32(200*252) >> 8),
		G: uint8(uint32(100*252) >> 8),
		B: uint8(uint32(50*252) >> 8),
		A: 255,
	}
	assert.Equal(t, want, dst.At(5, 10))
	assert.Equal(t, want, dst.At(18, 20)) // fxw-2: the last column the bake's x-clamp leaves unmoved
}

// TestProcessMapLeavesOutOfRoiRowsOfDstUntouched covers §4.3's "out-of-roi
// rows are not written and therefore retain their previous contents": dst
// keeps its own prior pixels there regardless of what src holds, since src
// and dst are two different frames (the swapped img/next pair) rather than
// the same buffer.
func TestProcessMapLeavesOutOfRoiRowsOfDstUntouched(t *testing.T) {
	fxw, fxh := 10, 10
	settings := Settings{Fxw: fxw, Fxh: fxh, YRoi: YRoi{Min: 4, Max: 6}}
	wm := Bake(settings, Vec2{X: 5, Y: 5}, 1, 1, TurnScale{Scale: 2, Turn: 1})

	src := NewImage[Rgba](Shape2{H: fxh, W: fxw})
	dst := NewImage[Rgba](Shape2{H: fxh, W: fxw})
	dstBefore := make([]Rgba, len(dst.Pix))
	for y := 0; y < fxh; y++ {
		for x := 0; x < fxw; x++ {
			src.Set(x, y, Rgba{R: uint8(y), G: uint8(x), A: 255})
			dst.Set(x, y, Rgba{R: uint8(200 + y), G: uint8(100 + x), B: 7, A: 255})
		}
	}
	copy(dstBefore, dst.Pix)

	ProcessMap(src, dst, wm, settings.YRoi)

	for y := 0; y < fxh; y++ {
		if settings.YRoi.Contains(y) {
			continue
		}
		for x := 0; x < fxw; x++ {
			idx := y*fxw + x
			assert.Equal(t, dstBefore[idx], dst.At(x, y), "row %d outside ROI must retain dst's own prior contents", y)
			assert.NotEqual(t, src.At(x, y), dst.At(x, y), "out-of-roi dst must not have been overwritten from src")
		}
	}
}

// TestWarpConvergence is the §8 "100 frames reduces max channel intensity
// by a factor >= (252.5/256)^100 ~= 0.25" scenario. The implementation's
// uint8 truncation of the scaled weight (252 rather than 252.5) only
// dims faster than that bound, never slower.
func TestWarpConvergence(t *testing.T) {
	fxw, fxh := 12, 12
	settings := Settings{Fxw: fxw, Fxh: fxh, YRoi: YRoi{Min: 0, Max: fxh}}
	id := TurnScale{Scale: 1, Turn: 0}
	wm := Bake(settings, Vec2{X: 6, Y: 6}, 1, 0, id)

	a := NewImage[Rgba](Shape2{H: fxh, W: fxw})
	b := NewImage[Rgba](Shape2{H: fxh, W: fxw})
	for i := range a.Pix {
		a.Pix[i] = Rgba{R: 255, G: 255, B: 255, A: 255}
	}

	for i := 0; i < 100; i++ {
		ProcessMap(a, b, wm, settings.YRoi)
		a, b = b, a
	}

	px := a.At(6, 6)
	ratio := float64(px.R) / 255.0
	bound := math.Pow(252.5/256.0, 100)

	assert.Less(t, ratio, bound+0.02, "100 applications should have decayed at least as fast as the documented bound")
	assert.Greater(t, ratio, 0.0)
}
