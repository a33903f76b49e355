// main.go - CLI entry point: decode a file, play it, paint it (§6)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

const (
	defaultFxw = 640
	defaultFxh = 480
)

func main() {
	var seed = pflag.Int64P("seed", "s", 1, "RNG seed override, for golden-frame debugging.")
	var width = pflag.IntP("width", "w", defaultFxw, "Framebuffer width.")
	var height = pflag.IntP("height", "h", defaultFxh, "Framebuffer height.")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: deiss <audio-file>")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}
	path := pflag.Arg(0)

	decoded, err := DecodeFile(path)
	if err != nil {
		logger.Error("decode failed", "err", err)
		os.Exit(1)
	}

	painter := NewPainter(*width, *height)
	defer painter.Close()
	if *seed != 1 {
		painter.Globals.Rand = NewMinstd(uint64(*seed))
	}

	bufSize := RequiredBufferSize(*width)
	playback, err := NewAudioPlayback(decoded, bufSize, painter.OnSamples)
	if err != nil {
		logger.Error("audio output failed", "err", err)
		os.Exit(1)
	}
	defer playback.Close()
	playback.Start()

	gpu := NewEbitenGPU(*width, *height)
	go renderLoop(painter, gpu, playback)

	if err := gpu.Run(painter); err != nil {
		logger.Error("gpu failed", "err", err)
		os.Exit(1)
	}
}

// renderLoop drives Painter.OnRender independently of the GPU's vsync tick,
// since Ebiten's Update already fires at its own refresh rate but the
// visualizer's frame clock (floatframe, mode dwell) is defined in terms of
// render calls, not draw calls - decoupling keeps the two honest even if a
// future headless GPU collaborator draws at a different cadence.
func renderLoop(p *Painter, gpu *EbitenGPU, playback *AudioPlayback) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for range ticker.C {
		if !playback.IsPlaying() {
			break
		}
		p.OnRender()
	}
	gpu.RequestClose()
}
