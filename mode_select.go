// mode_select.go - effect-mask sampling and mode/waveform selection (C8)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// EffectFreqTable is a blueprint's per-millage firing frequency for each of
// the 8 effect kinds, indexed by EffectKind (§3).
type EffectFreqTable [8]uint32

// Sample draws an EffectMask from the table: each effect independently
// fires if a per-mille roll clears 70% of its threshold; then effects are
// added (by threshold roll) until at least min are set or no unset effect
// has a non-zero threshold left, any effect with a
// threshold >= 1000 is forced on, and effects are randomly dropped (only
// among those below threshold 1000) until at most max remain. If Grid
// ends up set, Bar is forced off (painter/mode_blueprint.rs EffectFreq::sample).
func (t EffectFreqTable) Sample(min, max int, rng *Minstd) EffectMask {
	var mask EffectMask
	for i, thresh := range t {
		mask[i] = rng.NextIdx(1000) < int(thresh*7)/10
	}

	n := mask.Count()
	for n < min {
		canAdd := false
		for i, thresh := range t {
			if mask[i] {
				continue
			}
			if thresh > 0 {
				canAdd = true
			}
			if rng.NextIdx(1000) < int(thresh) {
				mask[i] = true
				n++
				break
			}
		}
		if !canAdd {
			break
		}
	}

	for i, thresh := range t {
		if thresh >= 1000 {
			mask[i] = true
		}
	}
	n = mask.Count()

	for n > max {
		i := rng.NextIdx(effectKindCount)
		if mask[i] && t[i] < 1000 {
			mask[i] = false
			n--
		}
	}

	if mask[EffectGrid] {
		mask[EffectBar] = false
	}

	return mask
}

// Pick returns the priority mode if set, else a weighted draw over
// ModePrefs.Weights; an all-zero weight vector falls back to mode 1
// (painter/settings.rs ModePrefs::pick).
func (p ModePrefs) Pick(rng *Minstd) int {
	if p.Priority != 0 {
		return p.Priority
	}
	var total int
	for _, w := range p.Weights {
		total += int(w)
	}
	if total == 0 {
		return 1
	}
	rnd := rng.NextIdx(total)
	for mode, w := range p.Weights {
		if mode == 0 {
			continue
		}
		if rnd < int(w) {
			return mode
		}
		rnd -= int(w)
	}
	return 1
}

// NumWaves is the number of waveform overlays (§4.5).
const NumWaves = 7

// waveExcluded lists (mode, waveform) combinations §4.6 forbids. The
// original table also names modes 14, 23, 24 — out of range for this
// implementation's 12-mode library (§9 "mode-specific constants... not
// exhaustively covered") — so only the in-range entries (mode 6, mode 8,
// mode 12) are kept; see DESIGN.md.
var waveExcluded = map[int]map[int]bool{
	6:  {5: true},
	8:  {6: true},
	12: {4: true, 6: true},
}

// Pick returns the priority waveform if set, else reject-samples
// next_idx(NUM_WAVES*3-1)/3 + 1 until (mode, waveform) clears the exclusion
// set (§4.6).
func (w WaveformPrefs) Pick(mode int, rng *Minstd) int {
	if w.Priority != 0 {
		return w.Priority
	}
	for {
		wave := rng.NextIdx(NumWaves*3-1)/3 + 1
		if !waveExcluded[mode][wave] {
			return wave
		}
	}
}

// GenerateWarpSpec builds the next WarpSpec for the warp worker: picks a
// mode, samples its effect mask, jitters the warp center, derives damping
// from the blueprint's motion_dampened flag and fps-derived time_scale, and
// mints a transform (painter/warp.rs WarpSpec::generate).
func GenerateWarpSpec(settings Settings, library *ModeLibrary, g *Globals) WarpSpec {
	mode := settings.ModePrefs.Pick(g.Rand)
	bp := library.Blueprints[mode]

	mask := bp.EffectFreq.Sample(bp.EffectCount[0], bp.EffectCount[1], g.Rand)

	shape := Shape2{H: settings.Fxh, W: settings.Fxw}
	gxc := float32(settings.Fxw)/2 - 1 + float32(g.Rand.NextIdx(60)-30)
	gyc := float32(settings.Fxh)/2 - 1 + float32(g.Rand.NextIdx(30)-15)
	center := Vec2{X: gxc, Y: gyc}

	damping := clampF32(g.SuggestedDampening, 0.5, 1.0)
	if bp.MotionDampened {
		damping *= 0.5
	}
	damping *= g.TimeScale

	waveform := settings.WaveformPrefs.Pick(mode, g.Rand)

	transform := bp.TfGen(g.Rand, shape)

	weightsumFactor := float32(1.0)
	if mode == 12 {
		weightsumFactor = 0.98
	}

	return WarpSpec{
		Settings:        settings,
		Mode:            mode,
		Waveform:        waveform,
		EffectMask:      mask,
		Center:          center,
		WeightsumFactor: weightsumFactor,
		Damping:         damping,
		Transform:       transform,
	}
}
