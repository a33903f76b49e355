// settings.go - read-mostly engine configuration shared with the GPU collaborator

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// YRoi is the vertical band the warp feedback loop recirculates (§3 "ROI").
type YRoi struct {
	Min, Max int
}

func (r YRoi) Contains(y int) bool {
	return y >= r.Min && y < r.Max
}

// ModePrefs drives weighted mode selection with a priority override (§4.6).
type ModePrefs struct {
	Priority int       // 0 = no override, else a mode id 1..=12
	Weights  [13]uint8 // index 0 unused, 1..=12 are the mode weights (0..=5)
}

// WaveformPrefs mirrors ModePrefs for the 7 waveform overlays.
type WaveformPrefs struct {
	Priority int // 0 = no override, else a waveform id 1..=7
}

// CRTShaderSettings carries the GPU collaborator's post-process knobs (§6).
// The visualization core never reads these; it only carries them so the
// GPU collaborator can pull them off the same Settings snapshot.
type CRTShaderSettings struct {
	WarpEnabled      bool
	WarpStrength     float32
	WarpXY           Vec2
	ScanlinesEnabled bool
	ScanlineStrength float32
	AfterglowEnabled bool
	Afterglow        float32
}

// DefaultCRTShaderSettings matches a mild, always-on CRT look.
func DefaultCRTShaderSettings() CRTShaderSettings {
	return CRTShaderSettings{
		WarpEnabled:      true,
		WarpStrength:     0.08,
		WarpXY:           Vec2{X: 1, Y: 1},
		ScanlinesEnabled: true,
		ScanlineStrength: 0.12,
		AfterglowEnabled: true,
		Afterglow:        0.35,
	}
}

// Settings is the read-mostly configuration record. Only mode_prefs and
// waveform_prefs are mutated after construction, by the GUI collaborator
// (§3); the visualizer never writes back.
type Settings struct {
	Fxw, Fxh            int
	VolScale            float32
	EnableMapDampening  bool
	YRoi                YRoi
	Gf                  [6]float32
	ModePrefs           ModePrefs
	WaveformPrefs       WaveformPrefs
	CRTShaderSettings   CRTShaderSettings
}

// NewSettings builds the default Settings for a given framebuffer shape,
// sampling gf[] fresh from rng as the Painter constructor does (§4.7).
// gf[i] in [0.02, 0.03) matches mode_blueprint_library.rs's
// "rand.next_01_prom() * 0.01 + 0.02" exactly; gf feeds t*gf[k] in colorGen
// where t grows into the thousands, so this narrow range is what keeps the
// color phase drifting slowly frame to frame instead of spinning through
// many cycles per frame.
func NewSettings(fxw, fxh int, rng *Minstd) Settings {
	var gf [6]float32
	for i := range gf {
		gf[i] = rng.Next01Prom()*0.01 + 0.02
	}
	return Settings{
		Fxw:                fxw,
		Fxh:                fxh,
		VolScale:           0.2,
		EnableMapDampening: false,
		YRoi:               YRoi{Min: 90, Max: fxh - 90},
		Gf:                 gf,
		CRTShaderSettings:  DefaultCRTShaderSettings(),
	}
}

// Clone returns a value copy; Settings has no reference fields that need
// deep-copying, so this is the "cheap, self-contained clone" the WarpSpec
// relies on to cross the worker channel (§5).
func (s Settings) Clone() Settings {
	return s
}
