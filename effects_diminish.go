// effects_diminish.go - DiminishCenter: a final center-damping pass (C7)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// DiminishCenter scales a small region of the framebuffer down by the
// blueprint's CenterDwindle, run only when CenterDwindle < 0.999
// (fx/diminish_center.rs). In CenterMode it dims a 5-pixel plus-shape at
// the center; otherwise (mode 12 only) it dims a 3-pixel-wide vertical
// strip spanning the visible band.
type DiminishCenter struct {
	Center        Vec2
	CenterDwindle float32
	CenterMode    bool
	YLo, YHi      int
}

func NewDiminishCenter(center Vec2, dwindle float32, mode int, yLo, yHi int) DiminishCenter {
	return DiminishCenter{
		Center:        center,
		CenterDwindle: dwindle,
		CenterMode:    mode != 12,
		YLo:           yLo,
		YHi:           yHi,
	}
}

var diminishCross = [5][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (d DiminishCenter) Render(img *Image[Rgba]) {
	if d.CenterDwindle >= 0.999 {
		return
	}
	cx, cy := int(d.Center.X), int(d.Center.Y)

	if d.CenterMode {
		for _, o := range diminishCross {
			x, y := cx+o[0], cy+o[1]
			if !inBounds(img, x, y) {
				continue
			}
			img.Set(x, y, img.At(x, y).Scale(d.CenterDwindle))
		}
		return
	}

	for y := d.YLo; y < d.YHi; y++ {
		for dx := -1; dx <= 1; dx++ {
			x := cx + dx
			if !inBounds(img, x, y) {
				continue
			}
			img.Set(x, y, img.At(x, y).Scale(d.CenterDwindle))
		}
	}
}
