// effects_chasers.go - TwoChasers and OneDottyChaser, the lissajous trail effects (C7)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// TwoChasers draws Passes independent lissajous-path traces, each sampled
// at n = 20*Scale points per frame, blending every sampled pixel toward
// white (fx/two_chasers.rs). yLo/yHi restrict the trace to the frame's
// visible band (y_roi).
type TwoChasers struct {
	Center     Vec2
	Passes     int
	Scale      float32
	YLo, YHi   int
}

func NewTwoChasers(center Vec2, yLo, yHi int) TwoChasers {
	return TwoChasers{Center: center, Passes: 2, Scale: 1, YLo: yLo, YHi: yHi}
}

func (tc TwoChasers) Render(img *Image[Rgba], floatFrame float32) {
	n := int(20 * tc.Scale)
	if n <= 0 {
		return
	}
	for pass := 0; pass < tc.Passes; pass++ {
		t := floatFrame + float32(pass)*137
		for i := 0; i < n; i++ {
			q := float32(i) / float32(n)
			x := tc.Center.X + 80*sinf(t*0.0123+q*6.283)
			y := tc.Center.Y + 60*cosf(t*0.0197+q*6.283)
			ix, iy := int(x), int(y)
			if iy < tc.YLo || iy >= tc.YHi || !inBounds(img, ix, iy) {
				continue
			}
			cur := img.At(ix, iy)
			img.Set(ix, iy, Rgba{
				R: blendWhite(cur.R),
				G: blendWhite(cur.G),
				B: blendWhite(cur.B),
				A: cur.A,
			})
		}
	}
}

func blendWhite(v uint8) uint8 {
	return uint8(255 - float32(255-int(v))*0.6)
}

// OneDottyChaser pushes one new lissajous-positioned dot into the shared
// chaser ring each frame, then renders every stored dot as a 2x2 block,
// nudging each stored dot's X forward by one pixel to leave a trail
// (fx/one_dotty_chaser.rs).
type OneDottyChaser struct {
	Center   Vec2
	Col      Rgba
	YLo, YHi int
}

func NewOneDottyChaser(center Vec2, col Rgba, yLo, yHi int) OneDottyChaser {
	return OneDottyChaser{Center: center, Col: col, YLo: yLo, YHi: yHi}
}

func (odc OneDottyChaser) Render(img *Image[Rgba], floatFrame float32, ring *ChasersRing) {
	time := floatFrame
	dx := 90 * sinf(time*0.0081)
	dy := 70 * cosf(time*0.0137)
	x := int(odc.Center.X + dx)
	y := int(odc.Center.Y + dy)
	if y >= odc.YLo && y < odc.YHi {
		ring.Push(ChaserDot{X: x, Y: y, Color: odc.Col})
	}

	dots := ring.Snapshot()
	for _, d := range dots {
		if d.Y < odc.YLo || d.Y >= odc.YHi {
			continue
		}
		for py := 0; py < 2; py++ {
			for px := 0; px < 2; px++ {
				cx, cy := d.X+px, d.Y+py
				if !inBounds(img, cx, cy) {
					continue
				}
				img.Set(cx, cy, d.Color)
			}
		}
	}
	ring.AdvanceX()
}
