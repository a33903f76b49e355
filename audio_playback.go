// audio_playback.go - oto-backed audio output driving the feature extractor (§5, §6)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"io"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// AudioPlayback owns the oto player and feeds every buffer it pulls from
// the decoded stream into the engine's on_samples callback before handing
// it to the speaker, satisfying the "engine observes audio in the order
// the playback engine emits it" ordering guarantee (§5).
type AudioPlayback struct {
	ctx    *oto.Context
	player *oto.Player

	mu       sync.Mutex
	data     []float32
	pos      int
	bufSize  int
	onSample func([]float32)
}

// NewAudioPlayback opens an oto context at the decoded sample rate with
// stereo float32 output and wires reads back to onSample in buffer_size
// windows (§6: "buffer_size: usize, on_samples(&interleaved_f32)").
func NewAudioPlayback(decoded *DecodedAudio, bufSize int, onSample func([]float32)) (*AudioPlayback, error) {
	op := &oto.NewContextOptions{
		SampleRate:   decoded.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, &AudioError{Operation: "open output", Err: err}
	}
	<-ready

	ap := &AudioPlayback{
		ctx:      ctx,
		data:     decoded.Samples,
		bufSize:  bufSize,
		onSample: onSample,
	}
	ap.player = ctx.NewPlayer(ap)
	return ap, nil
}

// Read implements io.Reader for the oto player: pulls the next window of
// already-decoded f32 samples, serializes them as float32LE bytes, and
// fires on_samples with the same window before returning it (§6).
func (a *AudioPlayback) Read(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	frames := a.bufSize
	if frames <= 0 {
		frames = 1024
	}
	remaining := len(a.data) - a.pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	if frames > remaining {
		frames = remaining
	}

	window := a.data[a.pos : a.pos+frames]
	a.pos += frames

	if a.onSample != nil {
		a.onSample(window)
	}

	n := 0
	for _, v := range window {
		if n+4 > len(p) {
			break
		}
		putFloat32LE(p[n:], v)
		n += 4
	}
	return n, nil
}

func putFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}

// Start begins playback.
func (a *AudioPlayback) Start() {
	a.player.Play()
}

// IsPlaying reports whether the underlying player is still consuming data.
func (a *AudioPlayback) IsPlaying() bool {
	return a.player.IsPlaying()
}

// Close releases the player and output context.
func (a *AudioPlayback) Close() error {
	if a.player != nil {
		a.player.Close()
	}
	return nil
}
