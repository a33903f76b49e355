// effects_grid.go - the Grid effect: a pulsing lattice of lit pixels (C7)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// Grid renders a lattice of saturating-max pixels whose brightness pulses
// with frame time (fx/grid.rs). Spacing scales with framebuffer width;
// framebuffers at least 1800px wide ("fat_pixels") get 2x2 blocks instead
// of single pixels.
type Grid struct {
	Inc       int
	FatPixels bool
	Val       uint8
	YLo, YHi  int
}

// NewGrid samples the grid's current brightness from the frame clock.
func NewGrid(fxw, yLo, yHi int, g *Globals) Grid {
	ph := g.FloatFrame * g.TimeScale
	v := 65 + 45*sinf(ph*0.06033) + 35*sinf(ph*0.04710+1) + 25*sinf(ph*0.00523-1)
	return Grid{
		Inc:       fxw / 30,
		FatPixels: fxw >= 1800,
		Val:       uint8(clampF32(v, 0, 255)),
		YLo:       yLo,
		YHi:       yHi,
	}
}

func (gr Grid) Render(img *Image[Rgba]) {
	if gr.Inc <= 0 {
		return
	}
	col := Rgba{R: gr.Val, G: gr.Val, B: gr.Val, A: 255}
	satMax := func(c Rgba) Rgba {
		return Rgba{
			R: maxU8(c.R, col.R),
			G: maxU8(c.G, col.G),
			B: maxU8(c.B, col.B),
			A: c.A,
		}
	}
	for y := gr.YLo; y < gr.YHi; y += gr.Inc {
		for x := 0; x < img.Shape.W; x += gr.Inc {
			if gr.FatPixels {
				for dy := 0; dy < 2 && y+dy < img.Shape.H; dy++ {
					for dx := 0; dx < 2 && x+dx < img.Shape.W; dx++ {
						img.Set(x+dx, y+dy, satMax(img.At(x+dx, y+dy)))
					}
				}
				continue
			}
			img.Set(x, y, satMax(img.At(x, y)))
		}
	}
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
