// warp_bake.go - warp map construction and fixed-point bilinear remap (C5)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

// WarpPixel is one destination pixel's bilinear source descriptor (§3).
// Weights conceptually sum to slightly below 256 (weightsum factor, §9
// "Feedback-bleed via sub-unity weights") — this is the engine's signature
// decay, not a bug to be "fixed" by normalizing to exactly 256.
type WarpPixel struct {
	Weights [4]uint8
	Index   uint32
}

// WarpMap is the baked per-pixel lookup table (§3).
type WarpMap = Image[WarpPixel]

// bakeWeightScale is the weightsum ceiling referenced by §4.3 step 7 and
// §9: weights are scaled by weightsum_factor * 252.5, deliberately short
// of 256 so the remap's accumulated sum decays every frame.
const bakeWeightScale = 252.5

// Bake computes the WarpMap for the given transform, center, weightsum
// factor, and damping (§4.3). It touches no Painter state and is safe to
// run on the warp worker goroutine.
func Bake(settings Settings, center Vec2, weightsumFactor float32, damping float32, transform Transform) *WarpMap {
	fxw, fxh := settings.Fxw, settings.Fxh
	shape := Shape2{H: fxh, W: fxw}
	m := NewImage[WarpPixel](shape)

	for i := 0; i < fxh; i++ {
		for j := 0; j < fxw; j++ {
			pi := Vec2{X: float32(j), Y: float32(i)}
			p2 := transform.Apply(pi, center, shape)
			p4 := Vec2{
				X: pi.X*(1-damping) + p2.X*damping,
				Y: pi.Y*(1-damping) + p2.Y*damping,
			}
			p4.X = wrapX(p4.X, fxw)

			ix := int(math.Floor(float64(p4.X)))
			iy := int(math.Floor(float64(p4.Y)))
			iyClamped := clampInt(iy, 2, fxh-3)
			ix = clampInt(ix, 0, fxw-2)

			index := uint32(iyClamped*fxw + ix)

			dx := p4.X - float32(ix)
			dy := p4.Y - float32(iy)

			scale := weightsumFactor * bakeWeightScale
			w00 := uint8((1 - dx) * (1 - dy) * scale)
			w10 := uint8(dx * (1 - dy) * scale)
			w01 := uint8((1 - dx) * dy * scale)
			w11 := uint8(dx * dy * scale)

			m.Set(j, i, WarpPixel{
				Weights: [4]uint8{w00, w10, w01, w11},
				Index:   index,
			})
		}
	}
	return m
}

// wrapX wraps x into [0, fxw-1) by adding/subtracting fxw-1 (§4.3 step 4;
// y is never wrapped).
func wrapX(x float32, fxw int) float32 {
	span := float32(fxw - 1)
	if span <= 0 {
		return 0
	}
	for x < 0 {
		x += span
	}
	for x >= span {
		x -= span
	}
	return x
}

// neighborOffsets are the four source-pixel offsets a WarpPixel's weights
// correspond to, relative to Index: top-left, top-right, bottom-left,
// bottom-right (§4.3 step 7, §4.4 remap formula).
var neighborOffsets = [4]int{0, 1, 0, 1} // column offsets
var neighborRowOffsets = [4]int{0, 0, 1, 1}

// ProcessMap remaps src through warpMap into dst over the rows in
// settings.YRoi. Rows outside the ROI are left untouched in dst — not
// copied from src — so dst retains whatever it held from two frames back
// (img/next are swapped every render, painter.go's OnRender): a deliberate
// every-other-frame ghost of out-of-roi content, not a live pass-through
// (§4.3 "Out-of-roi rows are not written and therefore retain their
// previous contents").
func ProcessMap(src, dst *Image[Rgba], warpMap *WarpMap, roi YRoi) {
	fxw := src.Shape.W
	fxh := src.Shape.H

	for y := 0; y < fxh; y++ {
		if !roi.Contains(y) {
			continue
		}
		for x := 0; x < fxw; x++ {
			wp := warpMap.At(x, y)
			dst.Set(x, y, remapPixel(src, wp, fxw))
		}
	}
}

// remapPixel computes one destination pixel from its WarpPixel descriptor:
// an unsigned fixed-point bilinear average with a post-shift truncation
// (not rounding, §9) so the luminance response matches the original intent.
func remapPixel(src *Image[Rgba], wp WarpPixel, fxw int) Rgba {
	var r, g, b uint32
	base := int(wp.Index)
	for k := 0; k < 4; k++ {
		off := base + neighborRowOffsets[k]*fxw + neighborOffsets[k]
		if off < 0 || off >= len(src.Pix) {
			continue
		}
		px := src.Pix[off]
		w := uint32(wp.Weights[k])
		r += uint32(px.R) * w
		g += uint32(px.G) * w
		b += uint32(px.B) * w
	}
	return Rgba{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: 255,
	}
}
