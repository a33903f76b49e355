// mode_library.go - the ModeBlueprint table and its construction-time bias pass (C8)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// ModeCount is the number of active visual modes (§4.2's transform table).
const ModeCount = 12

// TfGen produces a fresh Transform for one mode switch, consuming RNG draws
// in the exact sequence the original per-mode generator does so replays
// stay deterministic given the same seed (§8 invariant 7).
type TfGen func(rng *Minstd, shape Shape2) Transform

// ModeBlueprint is one mode's static recipe: how often each effect fires,
// how hard the center dims, how many effects to pick, whether the warp
// bake's damping gets halved, and how to mint a transform (§3, §4.2).
type ModeBlueprint struct {
	EffectFreq     EffectFreqTable
	SolarMax       uint32
	CenterDwindle  float32
	EffectCount    [2]int
	MotionDampened bool
	TfGen          TfGen
}

// ModeLibrary is the immutable mapping ModeId (1..=12) -> ModeBlueprint
// (painter/mode_blueprint_library.rs). The gf[] colour constants live in
// Settings, not here.
type ModeLibrary struct {
	Blueprints [ModeCount + 1]ModeBlueprint // index 0 unused, 1..=12 populated
}

// NewModeLibrary builds all 12 blueprints and applies the post-construction
// bias pass. Modes 6, 10, 11, and 12's literal effect data is taken from the
// original's own (disabled) registration blocks for those modes — the
// distilled spec's transform table still documents all twelve modes, so
// their constant data is restored rather than invented (see DESIGN.md).
func NewModeLibrary() *ModeLibrary {
	lib := &ModeLibrary{}

	lib.Blueprints[1] = ModeBlueprint{
		EffectFreq: EffectFreqTable{220, 150, 10, 680, 4, 170, 400, 0}, SolarMax: 800,
		CenterDwindle: 1.0, EffectCount: [2]int{1, 2}, MotionDampened: true,
		TfGen: mode1Tf,
	}
	lib.Blueprints[2] = ModeBlueprint{
		EffectFreq: EffectFreqTable{750, 500, 750, 750, 0, 0, 0, 0}, SolarMax: 35,
		CenterDwindle: 1.0, EffectCount: [2]int{1, 5}, MotionDampened: true,
		TfGen: mode2Tf,
	}
	lib.Blueprints[3] = ModeBlueprint{
		EffectFreq: EffectFreqTable{100, 100, 100, 500, 10, 0, 300, 0}, SolarMax: 60,
		CenterDwindle: 0.99, EffectCount: [2]int{1, 2}, MotionDampened: false,
		TfGen: mode3Tf,
	}
	lib.Blueprints[4] = ModeBlueprint{
		EffectFreq: EffectFreqTable{500, 100, 100, 100, 30, 0, 0, 0}, SolarMax: 34,
		CenterDwindle: 0.98, EffectCount: [2]int{1, 2}, MotionDampened: true,
		TfGen: mode4Tf,
	}
	lib.Blueprints[5] = ModeBlueprint{
		EffectFreq: EffectFreqTable{100, 350, 100, 500, 15, 180, 500, 0}, SolarMax: 60,
		CenterDwindle: 0.99, EffectCount: [2]int{1, 2}, MotionDampened: true,
		TfGen: mode5Tf,
	}
	lib.Blueprints[6] = ModeBlueprint{
		EffectFreq: EffectFreqTable{400, 120, 200, 0, 0, 0, 0, 0}, SolarMax: 60,
		CenterDwindle: 1.0, EffectCount: [2]int{1, 2}, MotionDampened: false,
		TfGen: mode6Tf,
	}
	lib.Blueprints[7] = ModeBlueprint{
		EffectFreq: EffectFreqTable{50, 200, 0, 300, 0, 600, 350, 0}, SolarMax: 65,
		CenterDwindle: 0.985, EffectCount: [2]int{1, 2}, MotionDampened: true,
		TfGen: mode7Tf,
	}
	lib.Blueprints[8] = ModeBlueprint{
		EffectFreq: EffectFreqTable{150, 150, 150, 150, 25, 0, 0, 0}, SolarMax: 60,
		CenterDwindle: 0.96, EffectCount: [2]int{1, 2}, MotionDampened: true,
		TfGen: mode8Tf,
	}
	lib.Blueprints[9] = ModeBlueprint{
		EffectFreq: EffectFreqTable{450, 200, 50, 200, 0, 100, 200, 0}, SolarMax: 50,
		CenterDwindle: 0.985, EffectCount: [2]int{1, 2}, MotionDampened: true,
		TfGen: mode9Tf,
	}
	lib.Blueprints[10] = ModeBlueprint{
		EffectFreq: EffectFreqTable{150, 20, 80, 0, 0, 80, 0, 0}, SolarMax: 0,
		CenterDwindle: 1.0, EffectCount: [2]int{0, 2}, MotionDampened: true,
		TfGen: mode10Tf,
	}
	lib.Blueprints[11] = ModeBlueprint{
		EffectFreq: EffectFreqTable{360, 200, 230, 550, 10, 330, 150, 0}, SolarMax: 750,
		CenterDwindle: 1.0, EffectCount: [2]int{0, 4}, MotionDampened: true,
		TfGen: mode11Tf,
	}
	lib.Blueprints[12] = ModeBlueprint{
		EffectFreq: EffectFreqTable{360, 200, 230, 0, 0, 330, 0, 0}, SolarMax: 500,
		CenterDwindle: 0.915, EffectCount: [2]int{0, 2}, MotionDampened: true,
		TfGen: mode12Tf,
	}

	for i := 1; i <= ModeCount; i++ {
		bp := &lib.Blueprints[i]
		bp.EffectFreq[EffectNuclide] = clampU32(uint32(float32(bp.EffectFreq[EffectNuclide])*1.3), 0, 900)
		bp.EffectFreq[EffectChasers] = clampU32(subSat(bp.EffectFreq[EffectChasers], 50), 0, 900)
		bp.EffectFreq[EffectDots] = minU32(bp.EffectFreq[EffectDots]+220, 900)
		bp.EffectFreq[EffectBar] = minU32(bp.EffectFreq[EffectBar]+220, 900)
		bp.EffectFreq[EffectShade] = minU32(bp.EffectFreq[EffectShade]+150, 900)
		bp.EffectFreq[EffectGrid] = minU32(bp.EffectFreq[EffectGrid]+8, 1000)
	}

	return lib
}

func clampU32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func subSat(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}

func pow2f(v float32) float32 { return v * v }

// mode1Tf: dithered turn+scale, equal scales, equal turns with one of the
// two independently flipped at p=1/3, then both flipped together at p=1/2
// and scaled by 0.6 (painter/mode_pixel_transforms.rs mode_1_tf,
// pixel_transform.rs DitherTurnScaleTransform::from_scale_turn_raw).
func mode1Tf(rng *Minstd, _ Shape2) Transform {
	scale := 0.985 - 0.12*pow2f(rng.Next01Prom())
	turn1 := 0.01 + 0.01*rng.Next01Prom()
	turn2 := turn1
	if rng.Next()%3 == 1 {
		turn1 = -turn1
	}
	if rng.NextBool() {
		turn1, turn2 = -turn1, -turn2
	}
	turn1 *= 0.6
	turn2 *= 0.6
	return DitherTransform{
		A: TurnScale{Scale: scale, Turn: turn1},
		B: TurnScale{Scale: scale, Turn: turn2},
	}
}

func mode2Tf(rng *Minstd, _ Shape2) Transform {
	scale := 1.00 - 0.02*rng.Next01Prom()
	turn := 0.02 + 0.07*rng.Next01Prom()
	return TurnScale{Scale: scale, Turn: negateWithProbability(turn, 0.5, rng)}
}

func mode3Tf(rng *Minstd, _ Shape2) Transform {
	scale := 0.85 + 0.10*rng.Next01Prom()
	turn := 0.01 + 0.015*rng.Next01Prom()
	return TurnScale{Scale: scale, Turn: negateWithProbability(turn, 0.5, rng)}
}

func mode4Tf(rng *Minstd, _ Shape2) Transform {
	turn := 0.007 + 0.02*rng.Next01Prom()
	return TurnRadialLinear{Turn: negateWithProbability(turn, 0.5, rng)}
}

// mode5Tf hardcodes NuclidePresent = true, preserving the original's own
// "// FIXME" literal quirk (painter/mode_pixel_transforms.rs mode_5_tf) —
// the real per-frame nuclide-active flag is never wired through in the
// source this is grounded on, so neither is it here.
func mode5Tf(rng *Minstd, _ Shape2) Transform {
	turn := 0.01 + 0.03*rng.Next01Prom()
	f1 := 0.05 + 0.05*rng.Next01Prom() + 0.07*rng.Next01Prom()
	f2 := 0.99 - 0.01*rng.Next01Prom() - 0.02*rng.Next01Prom()
	return TurnRadialNuclideAware{
		Turn: negateWithProbability(turn, 0.5, rng), F1: f1, F2: f2, NuclidePresent: true,
	}
}

// mode6Tf places five random attractors across the framebuffer, one of
// pull/swirl+/swirl- each (§4.2 table). The original's active registration
// for mode 6 was disabled before a tf_gen was ever attached to it; its
// transform here follows spec.md's own table literally (see DESIGN.md).
func mode6Tf(rng *Minstd, shape Shape2) Transform {
	var sources [5]Attractor
	for i := range sources {
		sources[i] = Attractor{
			Pos:  Vec2{X: float32(rng.NextIdx(shape.W)), Y: float32(rng.NextIdx(shape.H))},
			Kind: AttractorKind(rng.NextIdx(3)),
		}
	}
	return FiveSourcePotential{Sources: sources}
}

// mode7Tf: the noise table is populated before the turn-sign draw, matching
// the original's exact field-construction order (mode_7_tf builds
// rand_array before calling new_raw, which performs the turn negation).
func mode7Tf(rng *Minstd, _ Shape2) Transform {
	turn := 0.01 + 0.01*rng.Next01Prom()
	f1 := 0.92 + 0.01*rng.Next01Prom()
	f2 := 0.0006 + 0.0005*rng.Next01Prom()
	var table [noiseTableSize]float32
	for i := range table {
		table[i] = float32(rng.NextIdx(100)) * 0.0005
	}
	turn = negateWithProbability(turn, 0.5, rng)
	return TurnRadialNoise{Turn: turn, F1: f1, F2: f2, NoiseTable: table}
}

func mode8Tf(rng *Minstd, _ Shape2) Transform {
	turn := 0.05 * rng.Next01Prom()
	f1 := pow3f(rng.Next01Prom())*8 + 1.5
	return TurnRadialOscillatory{Turn: negateWithProbability(turn, 0.5, rng), F1: f1}
}

func pow3f(v float32) float32 { return v * v * v }

func mode9Tf(rng *Minstd, _ Shape2) Transform {
	turn := 0.01 + 0.03*rng.Next01Prom()
	f1 := 0.98 + 0.01*rng.Next01Prom()
	f2 := 0.0009 + 0.0012*rng.Next01Prom()
	return TurnRadialFade{Turn: negateWithProbability(turn, 0.5, rng), F1: f1, F2: f2}
}

// mode10Tf has no random parameters in spec.md's table: a fixed horizontal
// stretch-by-y (§4.2 table).
func mode10Tf(_ *Minstd, _ Shape2) Transform {
	return HorizontalStretchByY{}
}

// mode11Tf: "strong counter-rotation between subgrids" — spec.md's table
// describes mode 11 only qualitatively (no literal constants survive in
// original_source/, whose AnyTransform enum never grew a Mode11 variant
// before the mode was disabled). Grounded on mode 1's dithered shape with
// larger, always-opposing turns to produce the documented "aggressive"
// counter-rotation; recorded as an Open Question decision in DESIGN.md.
func mode11Tf(rng *Minstd, _ Shape2) Transform {
	scale := 0.97 - 0.10*pow2f(rng.Next01Prom())
	turn := 0.05 + 0.08*rng.Next01Prom()
	return DitherTransform{
		A: TurnScale{Scale: scale, Turn: turn},
		B: TurnScale{Scale: scale, Turn: -turn},
	}
}

func mode12Tf(_ *Minstd, _ Shape2) Transform {
	return PiecewiseCentralPinch{}
}
