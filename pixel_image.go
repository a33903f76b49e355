// pixel_image.go - row-major pixel buffer and small 2-D math primitives for DEISS

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

// Rgba is a 4-channel 8-bit-per-channel colour. Alpha is always 255 in the
// Painter's framebuffer (invariant 2, §8) but the type carries it so the
// warp remap and the GPU collaborator can share one pixel shape.
type Rgba struct {
	R, G, B, A uint8
}

func sat8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// SatAdd adds another colour's RGB channels with saturation, leaving alpha.
func (c Rgba) SatAdd(o Rgba) Rgba {
	return Rgba{
		R: sat8(int32(c.R) + int32(o.R)),
		G: sat8(int32(c.G) + int32(o.G)),
		B: sat8(int32(c.B) + int32(o.B)),
		A: c.A,
	}
}

// SatAddU3 saturating-adds three deltas to R, G, B (channels 0..3), alpha untouched.
func (c Rgba) SatAddU3(d [3]int32) Rgba {
	return Rgba{
		R: sat8(int32(c.R) + d[0]),
		G: sat8(int32(c.G) + d[1]),
		B: sat8(int32(c.B) + d[2]),
		A: c.A,
	}
}

// SatAddFF3 multiplies three deltas by scale, then saturating-adds to R, G, B.
func (c Rgba) SatAddFF3(scale float32, d [3]float32) Rgba {
	return Rgba{
		R: sat8(int32(c.R) + int32(scale*d[0])),
		G: sat8(int32(c.G) + int32(scale*d[1])),
		B: sat8(int32(c.B) + int32(scale*d[2])),
		A: c.A,
	}
}

// Scale multiplies RGB channels by f, floors, and clamps to u8.
func (c Rgba) Scale(f float32) Rgba {
	return Rgba{
		R: sat8(int32(math.Floor(float64(float32(c.R) * f)))),
		G: sat8(int32(math.Floor(float64(float32(c.G) * f)))),
		B: sat8(int32(math.Floor(float64(float32(c.B) * f)))),
		A: c.A,
	}
}

// Shape2 is a (height, width) pair, matching the spec's row-major (fxh, fxw) order.
type Shape2 struct {
	H, W int
}

// Image is a fixed-shape row-major buffer of T. Both framebuffers and the
// WarpMap are instances of this with T = Rgba and T = WarpPixel respectively.
type Image[T any] struct {
	Shape Shape2
	Pix   []T
}

// NewImage allocates a zero-valued Image of the given shape.
func NewImage[T any](shape Shape2) *Image[T] {
	return &Image[T]{
		Shape: shape,
		Pix:   make([]T, shape.H*shape.W),
	}
}

// At returns the pixel at (x, y); no bounds checking on the hot path.
func (img *Image[T]) At(x, y int) T {
	return img.Pix[y*img.Shape.W+x]
}

// Set writes the pixel at (x, y).
func (img *Image[T]) Set(x, y int, v T) {
	img.Pix[y*img.Shape.W+x] = v
}

// Len returns the pixel count (fxh * fxw).
func (img *Image[T]) Len() int {
	return len(img.Pix)
}

// Vec2 is a 2-D float vector used throughout the transform and effect code.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float32) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}
func (v Vec2) Norm() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Rot2 is a precomputed 2-D rotation (cos/sin pair).
type Rot2 struct {
	Cos, Sin float32
}

// RotFromAngle builds a Rot2 from an angle in radians.
func RotFromAngle(theta float32) Rot2 {
	s, c := math.Sincos(float64(theta))
	return Rot2{Cos: float32(c), Sin: float32(s)}
}

// Transform rotates p about the origin. ‖Transform(p)‖ == ‖p‖ (§8 round-trip law).
func (r Rot2) Transform(p Vec2) Vec2 {
	return Vec2{
		X: p.X*r.Cos - p.Y*r.Sin,
		Y: p.X*r.Sin + p.Y*r.Cos,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
