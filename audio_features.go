// audio_features.go - audio feature extraction: level trigger, volume, EMAs,
// low-pass, centroid subtraction, running Fourier (C3, §4.1)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "math"

const (
	Wave5Size       = 314
	Wave5BlendRange = 50
)

// RequiredBufferSize is the buffer size the engine requests from the audio
// collaborator (§4.1, §6): "at least this many interleaved samples per call".
func RequiredBufferSize(fxw int) int {
	a := fxw * 2
	b := (Wave5Size+Wave5BlendRange)*2 + 20
	if a > b {
		return a
	}
	return b
}

// FeatureExtractor runs the §4.1 pipeline on each on_samples invocation. It
// holds the small amount of state the level-trigger stage needs to persist
// frame to frame.
type FeatureExtractor struct {
	lastFrameV     float32
	lastFrameSlope float32
}

func NewFeatureExtractor() *FeatureExtractor {
	return &FeatureExtractor{}
}

// OnSamples ingests one window of interleaved stereo f32 PCM. Must only be
// called while the engine's serialization lock is held (§5) — it mutates
// globals in place and is never safe to call concurrently with itself or
// with a render tick.
func (fe *FeatureExtractor) OnSamples(wave []float32, settings *Settings, g *Globals) {
	buf := make([]float32, len(wave))
	copy(buf, wave)

	trigger := fe.levelTrigger(buf, settings.Fxw)
	if trigger > 0 && trigger < len(buf) {
		copy(buf, buf[trigger:])
	}

	vol := volumeOf(buf)
	g.Vol.Push(vol)

	fps := g.FPS.Current()
	if fps <= 0 {
		fps = 30
	}

	alphaNarrow := emaAlphaForFPS(0.30, fps)
	alphaWide30 := emaAlphaForFPS(0.85, fps)
	alphaWide96 := emaAlphaForFPS(0.96, fps)
	alphaPeaks := emaAlphaForFPS(0.90, fps)

	g.AvgVolNarrow = alphaNarrow*g.AvgVolNarrow + (1-alphaNarrow)*vol
	g.AvgVol = alphaWide30*g.AvgVol + (1-alphaWide30)*vol
	g.AvgVolWide = alphaWide96*g.AvgVolWide + (1-alphaWide96)*vol
	// Known quirk (§9, preserved): peaks always decay toward a constant 0
	// feed rather than tracking an actual peak signal.
	g.AvgVolPeaks = alphaPeaks*g.AvgVolPeaks + (1-alphaPeaks)*0

	g.VolumeSum += uint64(math.Floor(float64(g.AvgVol)))
	g.VolNarrow.Push(g.AvgVolNarrow)

	lowPass(buf)
	scale := settings.VolScale * (1.0 / 64.0) * (640.0 / float32(settings.Fxw))
	for i := range buf {
		buf[i] *= scale
	}

	subtractChannelCentroid(buf)

	netPowerChange := fe.runningFourier(buf, g)

	if settings.EnableMapDampening {
		if g.Frame < 50 {
			g.SuggestedDampening = 1
		} else {
			g.SuggestedDampening = 0.98*g.SuggestedDampening + 0.02*netPowerChange
		}
	} else {
		g.SuggestedDampening = 1.0
	}

	g.SoundBuffer = buf
	fe.updateBeatMode(g)
}

// levelTrigger searches for an alignment point and returns the number of
// samples to left-shift the buffer by; 0 means "no trigger, don't shift".
func (fe *FeatureExtractor) levelTrigger(buf []float32, fxw int) int {
	half := fxw / 2
	if half+8 >= len(buf) {
		return 0
	}
	for i := 8; i < half; i += 2 {
		vOldIdx := i + half - 8
		vIdx := i + half
		if vIdx >= len(buf) || vOldIdx < 0 || vOldIdx >= len(buf) {
			continue
		}
		vOld := buf[vOldIdx]
		v := buf[vIdx]
		if absF32(v-fe.lastFrameV) <= 256 && fe.lastFrameSlope*(v-vOld) >= 0 {
			fe.lastFrameV = v
			fe.lastFrameSlope = v - vOld
			return i
		}
	}
	// No trigger: record state from the fixed reference point.
	if half < len(buf) && half+8 < len(buf) {
		fe.lastFrameV = buf[half]
		fe.lastFrameSlope = buf[half+8] - buf[half]
	}
	return 0
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// volumeOf is the stride-4 min/max sweep: vol = (max - min) / 256.
func volumeOf(buf []float32) float32 {
	if len(buf) == 0 {
		return 0
	}
	min, max := buf[0], buf[0]
	for i := 0; i < len(buf); i += 4 {
		v := buf[i]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return (max - min) / 256
}

// emaAlphaForFPS re-expresses a decay rate calibrated at 30fps for the
// current framerate: alpha_fps = alpha_30 ^ (30/fps).
func emaAlphaForFPS(alpha30 float32, fps float32) float32 {
	if fps <= 0 {
		fps = 30
	}
	return float32(math.Pow(float64(alpha30), float64(30/fps)))
}

// lowPass applies buf[i] = 0.8*buf[i] + 0.2*buf[i+2] over i in [0, len-2).
func lowPass(buf []float32) {
	if len(buf) < 2 {
		return
	}
	for i := 0; i < len(buf)-2; i++ {
		buf[i] = 0.8*buf[i] + 0.2*buf[i+2]
	}
}

// subtractChannelCentroid takes stride-8 sums of L/R and subtracts the means
// from every L/R pair, centering each channel on zero.
func subtractChannelCentroid(buf []float32) {
	cL, cR := channelCentroid(buf)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] -= cL
		buf[i+1] -= cR
	}
}

// channelCentroid computes the stride-8 L/R means. Well-defined (returns
// (0, 0)) even on an all-zero buffer — no divide-by-zero since count is a
// static function of buffer length, never of the sample values.
func channelCentroid(buf []float32) (cL, cR float32) {
	var sumL, sumR float32
	var count int
	for i := 0; i+1 < len(buf); i += 8 {
		sumL += buf[i]
		sumR += buf[i+1]
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sumL / float32(count), sumR / float32(count)
}

const fourierSampleRate = 44100
const fourierWindow = 256

// runningFourier sweeps 24 Goertzel-style bands over the first 512 samples
// (256 stereo frames, L channel only), updates the smoothed power EMA, and
// returns the normalized net_power_change: the sum of |old_power -
// new_power| across all bands, where old_power is each band's Power from
// before this call overwrote it (painter/painter.rs RunningFourier::fourier:
// "let old_power = self.power[n]; self.power[n] = a.hypot(b); net_power_change
// += (old_power - self.power[n]).abs()"). This is the *only* feedback into
// suggested_dampening (§9).
func (fe *FeatureExtractor) runningFourier(buf []float32, g *Globals) float32 {
	n := fourierWindow * 2
	if len(buf) < n {
		n = len(buf)
	}
	var netPowerChange float32
	for band := 1; band < FourierBands; band++ {
		omega := 2 * math.Pi * 20 * math.Pow(2, float64(10*band)/24) / fourierSampleRate
		var a, b float64
		frames := n / 2
		for i := 0; i < frames; i++ {
			v := float64(buf[i*2])
			a += v * math.Sin(omega*float64(i))
			b += v * math.Cos(omega*float64(i))
		}
		oldPower := g.Fourier.Power[band]
		newPower := float32(math.Hypot(a, b))
		g.Fourier.Power[band] = newPower
		g.Fourier.PowerSmoothed[band] = 0.94*g.Fourier.PowerSmoothed[band] + 0.06*newPower
		netPowerChange += absF32(oldPower - newPower)
	}

	denom := float32(g.VolumeSum) / float32(g.Frame+1)
	if denom <= 0 {
		denom = 0.1
	}
	return (netPowerChange / denom) * 0.01
}

// Beat-mode hysteresis thresholds (§4.5, glossary "Beat mode").
const (
	beatModeEngageStrength  = 109
	beatModeDisengageStrength = 71
)

// updateBeatMode drives the hysteretic beat-mode flag from the differential
// volume-energy signal (avg_vol_narrow - mean)/max(std_dev,0.1) * 2,
// unclamped and multiplied by 100 so it is compared against the 109/71
// thresholds.
func (fe *FeatureExtractor) updateBeatMode(g *Globals) {
	mean := g.VolNarrow.Mean()
	std := g.VolNarrow.StdDev()
	if std < 0.1 {
		std = 0.1
	}
	strength := (g.AvgVolNarrow - mean) / std * 2 * 100
	if !g.BeatMode && strength > beatModeEngageStrength {
		g.BeatMode = true
	} else if g.BeatMode && strength < beatModeDisengageStrength {
		g.BeatMode = false
	}
}

// BeatModeBrightnessScale returns the clamp((avg_vol_narrow-mean)/max(std,0.1)*2,0,1)
// brightness attenuation applied to waveform colour when beat mode is engaged (§4.5).
func BeatModeBrightnessScale(g *Globals) float32 {
	mean := g.VolNarrow.Mean()
	std := g.VolNarrow.StdDev()
	if std < 0.1 {
		std = 0.1
	}
	v := (g.AvgVolNarrow - mean) / std * 2
	return clampF32(v, 0, 1)
}
