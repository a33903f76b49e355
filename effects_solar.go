// effects_solar.go - SolarParticles: a disk of radially-falling-off sparks (C7)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// SolarParticles samples points uniformly in a disk of radius 35 around a
// center and lights each sampled point plus its 8-neighbour ring with an
// intensity that falls off with distance from the disk's center
// (fx/solar_particles.rs). Count is the blueprint's SolarMax scaled by
// 0.5+0.5*sin(frame*0.05) for the per-frame mode-driven spawn, or a fixed
// one-shot burst (500) at the
// mode-1 "needs_init" transition (§4.7 step 4).
type SolarParticles struct {
	Center Vec2
	Count  int
}

func NewSolarParticles(center Vec2, count int) SolarParticles {
	return SolarParticles{Center: center, Count: count}
}

const solarDiskRadius = 35

// sampleDisk draws a point uniformly inside a disk of the given radius via
// rejection sampling, returning the offset and its distance from center.
func sampleDisk(radius float32, rng *Minstd) (dx, dy int, r float32) {
	for {
		x := rng.NextIdx(2*int(radius)+1) - int(radius)
		y := rng.NextIdx(2*int(radius)+1) - int(radius)
		d := Vec2{X: float32(x), Y: float32(y)}.Norm()
		if d <= radius {
			return x, y, d
		}
	}
}

var solarNeighborhood = [9][2]int{
	{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func (s SolarParticles) Render(img *Image[Rgba], rng *Minstd) {
	for p := 0; p < s.Count; p++ {
		dx, dy, r := sampleDisk(solarDiskRadius, rng)
		i0 := 4 + int32(rng.NextIdx(30))*int32(solarDiskRadius-r)/25
		i1 := i0 - 3
		i2 := i1 / 2
		cx, cy := int(s.Center.X)+dx, int(s.Center.Y)+dy

		for _, n := range solarNeighborhood {
			x, y := cx+n[0], cy+n[1]
			if !inBounds(img, x, y) {
				continue
			}
			cur := img.At(x, y)
			if int32(cur.R) >= 207-i0 {
				continue
			}
			img.Set(x, y, cur.SatAddU3([3]int32{i0, i1, i2}))
		}
	}
}
