// effects_shadebobs.go - ShadeBobs: ten lissajous-driven soft blobs (C7)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

const shadeBobCount = 10

// shadeBob holds one bob's random per-spawn micro-parameters
// (fx/shade_bobs.rs): three colour-gate frequencies and four lissajous
// jitter frequency/radius pairs, resampled each time ShadeBobs is spawned.
type shadeBob struct {
	microC   [3]float32
	microF   [4]float32
	microRad [4]float32
}

// ShadeBobs is ten independently-animated soft blobs, each nudging its
// center pixel and four neighbours by a small saturating delta gated by a
// slow per-channel sine toggle.
type ShadeBobs struct {
	Center Vec2
	Bobs   [shadeBobCount]shadeBob
}

func NewShadeBobs(center Vec2, rng *Minstd) ShadeBobs {
	var sb ShadeBobs
	sb.Center = center
	for i := range sb.Bobs {
		b := &sb.Bobs[i]
		for j := range b.microC {
			b.microC[j] = 0.08 + 0.09*rng.Next01Prom()
		}
		for j := range b.microF {
			b.microF[j] = 0.1 + 0.05*rng.Next01Prom()
			b.microRad[j] = 2.0 + 2.8*rng.Next01Prom()
		}
	}
	return sb
}

var shadeBobsNeighborhood = [5][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (sb ShadeBobs) Render(img *Image[Rgba], floatFrame float32, rng *Minstd) {
	for _, b := range sb.Bobs {
		t := floatFrame
		lx := b.microRad[0]*sinf(t*b.microF[0]) + b.microRad[1]*cosf(t*b.microF[1])
		ly := b.microRad[2]*sinf(t*b.microF[2]) + b.microRad[3]*cosf(t*b.microF[3])
		cx := int(sb.Center.X + lx)
		cy := int(sb.Center.Y + ly)

		col := [3]float32{}
		for c := 0; c < 3; c++ {
			if 1+sinf(t*b.microC[c]) >= 1 {
				col[c] = 1
			}
		}

		for step := 0; step < 4; step++ {
			jx := rng.NextIdx(5) - 2
			jy := rng.NextIdx(5) - 2
			for _, n := range shadeBobsNeighborhood {
				x, y := cx+n[0]+jx, cy+n[1]+jy
				if !inBounds(img, x, y) {
					continue
				}
				d := [3]int32{}
				for c := 0; c < 3; c++ {
					if col[c] == 1 {
						if n == [2]int{0, 0} {
							d[c] = 5
						} else {
							d[c] = 3
						}
					}
				}
				cur := img.At(x, y)
				img.Set(x, y, cur.SatAddU3(d))
			}
		}
	}
}
