// waveform.go - the seven live-sample scope overlays (C7, painter/wave.rs)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// lch and rch read the interleaved stereo sound buffer by frame index,
// returning 0 for any index past the end rather than panicking - the
// buffer is guaranteed long enough for every waveform's frame range in
// steady state, but a cold-start or truncated final window must not crash
// the render thread (§7 "nothing in the render path panics").
func lch(buf []float32, i int) float32 {
	idx := 2 * i
	if idx < 0 || idx >= len(buf) {
		return 0
	}
	return buf[idx]
}

func rch(buf []float32, i int) float32 {
	idx := 2*i + 1
	if idx < 0 || idx >= len(buf) {
		return 0
	}
	return buf[idx]
}

func rgbaFromF3(v [3]float32) Rgba {
	return Rgba{R: sat8(int32(v[0])), G: sat8(int32(v[1])), B: sat8(int32(v[2])), A: 255}
}

// RenderWaveform overlays the selected scope (1..=7) onto img using the
// latest feature-extracted sound buffer. Colour is shared across all seven,
// except that waveform 6 skips the beat-mode brightness attenuation and
// waveform 7 further scales the colour per pixel by the sample value.
func RenderWaveform(img *Image[Rgba], center Vec2, mode, waveform int, settings Settings, g *Globals) {
	if len(g.SoundBuffer) == 0 {
		return
	}

	base := (g.Vol.Current()*6 - g.AvgVol*3.5) * 10 - 40
	if g.BeatMode && waveform != 6 {
		base *= BeatModeBrightnessScale(g)
	}
	base = clampF32(base, 0, 155)

	t := (float32(g.Frame) + float32(g.ChaserOffset)) * g.TimeScale
	f := 7*sinf(t*0.006+59) + 5*cosf(t*0.0077+17)
	dat := colorGen(settings.Gf, f, t, [2]float32{0.55, 0.50}, [6]float32{10, 37, 32, 16, 87, 25})
	col := rgbaFromF3([3]float32{
		base * 1.07 * (1 + dat[0]) * (1 + dat[1]),
		base * 1.07 * (1 + dat[2]) * (1 + dat[3]),
		base * 1.07 * (1 + dat[4]) * (1 + dat[5]),
	})

	buf := g.SoundBuffer
	roi := settings.YRoi
	fxw, fxh := settings.Fxw, settings.Fxh

	switch waveform {
	case 1:
		yCenter := float32(center.Y)
		start, end := 0, fxw
		if mode == 10 {
			yCenter = float32(((fxh - 90) + fxw/2) / 2)
			start, end = 10, fxw-10
		}
		zl := lch(buf, start) + yCenter
		for i := start; i < end; i++ {
			prev := zl
			zl = lch(buf, i) + yCenter
			zl = prev*0.90 + zl*0.10
			y := int(zl)
			if roi.Contains(y) && i >= 0 && i < fxw {
				img.Set(i, y, col)
			}
		}

	case 2:
		const div = 0.7
		h1 := center.Y - float32(fxh)*0.12
		h2 := center.Y + float32(fxh)*0.12
		zl := lch(buf, 0)*div + h1
		zr := rch(buf, 0)*div + h1
		for j := 0; j < fxw; j++ {
			prevL, prevR := zl, zr
			zl = lch(buf, j)*div + h1
			zr = rch(buf, j)*div + h2
			zl = prevL*0.9 + zl*0.1
			zr = prevR*0.9 + zr*0.1
			yl, yr := int(zl), int(zr)
			if roi.Contains(yl) {
				img.Set(j, yl, col)
			}
			if roi.Contains(yr) {
				img.Set(j, yr, col)
			}
		}

	case 3:
		zl := lch(buf, roi.Min) + center.X
		for i := roi.Min; i < roi.Max; i++ {
			prev := zl
			zl = lch(buf, i) + center.X
			zl = prev*0.9 + zl*0.1
			xl := int(zl)
			if xl >= 0 && xl < fxw {
				img.Set(xl, i, col)
			}
		}

	case 4:
		const div = 0.9
		zl := lch(buf, roi.Min) * div
		zr := rch(buf, roi.Min) * div
		for i := roi.Min; i < roi.Max; i++ {
			prevL, prevR := zl, zr
			zl = lch(buf, i) * div
			zr = rch(buf, i) * div
			zl = prevL*0.9 + zl*0.1
			zr = prevR*0.9 + zr*0.1
			xl := int(zl) + i
			xr := int(zr) + i + (fxw - fxh)
			if xl >= 0 && xl < fxw {
				img.Set(xl, i, col)
			}
			if xr >= 0 && xr < fxw {
				img.Set(xr, i, col)
			}
		}

	case 5:
		var tmp [Wave5Size]float32
		for i := 0; i < Wave5Size; i++ {
			val := lch(buf, i)
			if i < Wave5BlendRange {
				amt := float32(i) / float32(Wave5BlendRange)
				tmp[i] = val*amt + (1-amt)*lch(buf, i+Wave5Size)
			} else {
				tmp[i] = val
			}
		}
		baseRad := float32(fxw) / 640 * 60
		rad := baseRad + tmp[0]*0.7
		for i := 0; i < Wave5Size; i++ {
			rad = rad*0.5 + 0.5*(baseRad+tmp[i]*0.7)
			if rad < 5 {
				continue
			}
			angle := float32(i) * 0.02
			s, c := sinf(angle), cosf(angle)
			px := int(center.X + rad*c)
			py := int(center.Y + rad*s)
			if px >= 0 && px < fxw && roi.Contains(py) {
				img.Set(px, py, col)
			}
		}

	case 6:
		const div = 1.2
		ang := sinf(float32(g.Frame) * 0.01)
		sinang, cosang := sinf(ang), cosf(ang)
		px2 := lch(buf, 0)
		py2 := rch(buf, 0)
		for i := 0; i < Wave5Size; i++ {
			px2 = px2*0.5 + 0.5*lch(buf, i)*div
			py2 = py2*0.5 + 0.5*rch(buf, i)*div
			px := int(px2*cosang + py2*sinang + center.X)
			py := int(px2*(-sinang) + py2*cosang + center.Y)
			if px >= 0 && px < fxw && roi.Contains(py) {
				img.Set(px, py, col)
			}
		}

	default: // 7
		v := float32(g.Frame) * 0.03
		dx, dy := sinf(v), cosf(v)
		if absF32(dx) <= 0.001 {
			return
		}
		if absF32(dx) > absF32(dy) {
			m := dy / dx
			b := center.Y - m*center.X
			for x := 0; x < fxw; x++ {
				y := int(m*float32(x) + b)
				if !roi.Contains(y) {
					continue
				}
				amt := clampF32(lch(buf, x)/64, 0, 1)
				img.Set(x, y, col.Scale(amt))
			}
		} else {
			m := dx / dy
			b := center.X - m*center.Y
			for y := roi.Min; y < roi.Max; y++ {
				x := int(m*float32(y) + b)
				if x < 0 || x >= fxw {
					continue
				}
				amt := clampF32(lch(buf, y)/64, 0, 1)
				img.Set(x, y, col.Scale(amt))
			}
		}
	}
}
