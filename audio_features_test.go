package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSilentFeatureState() (*FeatureExtractor, Settings, *Globals) {
	fe := NewFeatureExtractor()
	settings := NewSettings(64, 64, NewMinstd(1))
	g := NewGlobals(1)
	return fe, settings, g
}

// TestColdStartOnSilenceDoesNotPanicOrDiverge covers the cold-start/silence
// scenario: the very first window, all zeros, must produce zeroed features
// and a populated SoundBuffer rather than panicking on an empty history.
func TestColdStartOnSilenceDoesNotPanicOrDiverge(t *testing.T) {
	fe, settings, g := newSilentFeatureState()
	silence := make([]float32, RequiredBufferSize(settings.Fxw))

	assert.NotPanics(t, func() {
		fe.OnSamples(silence, &settings, g)
	})
	assert.NotNil(t, g.SoundBuffer)
	assert.Equal(t, float32(0), g.Vol.Current())
	assert.False(t, g.BeatMode)
}

func TestRepeatedSilenceKeepsVolumeAtZero(t *testing.T) {
	fe, settings, g := newSilentFeatureState()
	silence := make([]float32, RequiredBufferSize(settings.Fxw))
	for i := 0; i < 200; i++ {
		fe.OnSamples(silence, &settings, g)
	}
	assert.Equal(t, float32(0), g.AvgVol)
	assert.Equal(t, float32(0), g.AvgVolNarrow)
}

// TestLevelTriggerShiftsBufferLeft covers the audio-buffer level-trigger
// scenario (§4.1 step 1): once lastFrameV/lastFrameSlope are primed, a
// window whose samples clear the trigger condition is left-shifted rather
// than passed through untouched.
func TestLevelTriggerShiftsBufferLeft(t *testing.T) {
	fe := NewFeatureExtractor()
	fxw := 64
	n := RequiredBufferSize(fxw)
	half := fxw / 2

	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(i % 5)
	}

	shift1 := fe.levelTrigger(append([]float32(nil), buf...), fxw)
	assert.GreaterOrEqual(t, shift1, 0)
	assert.Less(t, shift1, half)

	buf2 := make([]float32, n)
	copy(buf2, buf)
	shift2 := fe.levelTrigger(buf2, fxw)
	assert.Greater(t, shift2, 0)
	assert.Less(t, shift2, half)
}

func TestBeatModeBrightnessScaleIsClamped(t *testing.T) {
	g := NewGlobals(1)
	for i := 0; i < 10; i++ {
		g.VolNarrow.Push(float32(i))
	}
	g.AvgVolNarrow = 1000 // far above the mean, should saturate at 1
	v := BeatModeBrightnessScale(g)
	assert.Equal(t, float32(1), v)

	g.AvgVolNarrow = -1000
	v = BeatModeBrightnessScale(g)
	assert.Equal(t, float32(0), v)
}

func TestRequiredBufferSizeGrowsWithFxwWideEnough(t *testing.T) {
	assert.Equal(t, 640*2, RequiredBufferSize(640))
	narrow := RequiredBufferSize(10)
	assert.GreaterOrEqual(t, narrow, (Wave5Size+Wave5BlendRange)*2+20)
}
