// audio_decode.go - file decoding into interleaved stereo float32 PCM (domain stack, §6)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// DecodedAudio is fully decoded interleaved stereo PCM in [-1, 1]-ish f32
// range, ready for the audio collaborator to hand to OnSamples windows
// (§6: "file decoding... provides interleaved stereo PCM samples").
type DecodedAudio struct {
	Samples    []float32
	SampleRate int
}

// DecodeFile picks mp3 or wav by extension (§6's "file decoding... external
// collaborator", concretely implemented here so the CLI is runnable;
// SPEC_FULL.md domain stack).
func DecodeFile(path string) (*DecodedAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AudioError{Operation: "open", Details: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return decodeMP3(f, path)
	case ".wav":
		return decodeWAV(f, path)
	default:
		return nil, &AudioError{Operation: "decode", Details: "unsupported extension " + filepath.Ext(path)}
	}
}

// decodeMP3 reads the entire stream and converts 16-bit LE stereo PCM (the
// go-mp3 decoder's only output format) into interleaved f32.
func decodeMP3(f *os.File, path string) (*DecodedAudio, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, &AudioError{Operation: "decode mp3", Details: path, Err: err}
	}

	raw := make([]byte, 0, 1<<20)
	buf := make([]byte, 32*1024)
	for {
		n, readErr := dec.Read(buf)
		if n > 0 {
			raw = append(raw, buf[:n]...)
		}
		if readErr != nil {
			break
		}
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		v := int16(raw[2*i]) | int16(raw[2*i+1])<<8
		samples[i] = float32(v) / 32768.0
	}

	return &DecodedAudio{Samples: samples, SampleRate: dec.SampleRate()}, nil
}

// decodeWAV uses go-audio/wav's full-buffer decode and down/up-mixes to
// interleaved stereo f32, matching whatever bit depth the file carries.
func decodeWAV(f *os.File, path string) (*DecodedAudio, error) {
	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, &AudioError{Operation: "decode wav", Details: path, Err: err}
	}

	maxVal := float32(int(1) << uint(buf.SourceBitDepth-1))
	if maxVal <= 0 {
		maxVal = 32768
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	frames := len(buf.Data) / channels
	samples := make([]float32, frames*2)
	for i := 0; i < frames; i++ {
		l := float32(buf.Data[i*channels]) / maxVal
		r := l
		if channels > 1 {
			r = float32(buf.Data[i*channels+1]) / maxVal
		}
		samples[2*i] = l
		samples[2*i+1] = r
	}

	return &DecodedAudio{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}
