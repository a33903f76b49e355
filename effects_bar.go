// effects_bar.go - SnackBar: a per-channel chromatic-dispersion light trail (C7)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// SnackBar traces a line between two lissajous offsets once per colour
// channel, each channel using a slightly phase-shifted time value to
// produce a chromatic-dispersion streak, incrementing that channel along
// the line up to a ceiling (fx/snack_bar.rs).
type SnackBar struct {
	Center   Vec2
	Scale    float32
	YLo, YHi int
}

func NewSnackBar(center Vec2, yLo, yHi int) SnackBar {
	return SnackBar{Center: center, Scale: 1, YLo: yLo, YHi: yHi}
}

const snackBarDispersionG = 0.003
const snackBarDispersionB = 0.006
const snackBarCeiling = 223
const snackBarStep = 16

func (sb SnackBar) Render(img *Image[Rgba], floatFrame float32) {
	n := int(sb.Scale * 50)
	if n <= 0 {
		return
	}
	dispersion := [3]float32{0, snackBarDispersionG, snackBarDispersionB}
	for c := 0; c < 3; c++ {
		t := floatFrame * (1 + dispersion[c])
		d1 := Vec2{X: 100 * sinf(t*0.0091), Y: 60 * cosf(t*0.0147)}
		d2 := Vec2{X: -100 * cosf(t*0.0077), Y: -60 * sinf(t*0.0168)}
		for i := 0; i < n; i++ {
			q := float32(i) / float32(n)
			p := d1.Scale(q).Add(d2.Scale(1 - q)).Add(sb.Center)
			x, y := int(p.X), int(p.Y)
			if y < sb.YLo || y >= sb.YHi || !inBounds(img, x, y) {
				continue
			}
			cur := img.At(x, y)
			img.Set(x, y, addChannelCapped(cur, c, snackBarStep, snackBarCeiling))
		}
	}
}

func addChannelCapped(c Rgba, channel int, delta, ceiling int32) Rgba {
	get := func(v uint8) int32 { return int32(v) }
	r, g, b := get(c.R), get(c.G), get(c.B)
	switch channel {
	case 0:
		if r < ceiling {
			r = minI32(r+delta, 255)
		}
	case 1:
		if g < ceiling {
			g = minI32(g+delta, 255)
		}
	case 2:
		if b < ceiling {
			b = minI32(b+delta, 255)
		}
	}
	return Rgba{R: uint8(r), G: uint8(g), B: uint8(b), A: c.A}
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
