// gpu_interface.go - window/GPU collaborator contracts (§6, generalized from video_interface.go)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// GPUError reports a failure from the window/GPU collaborator. Fatal at
// startup per the error taxonomy (§7: "GPU device/surface - fatal at
// startup; surfaced to CLI").
type GPUError struct {
	Operation string
	Details   string
	Err       error
}

func (e *GPUError) Error() string {
	msg := "gpu " + e.Operation
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GPUError) Unwrap() error { return e.Err }

// FrameSource is the read-only view the GPU collaborator pulls from each
// tick: the framebuffer and the Settings snapshot carrying CRT shader
// parameters (§6: "GPU collaborator ... writes nothing back").
type FrameSource interface {
	Framebuffer() *Image[Rgba]
	CurrentSettings() Settings
}

// WindowOutput is the window/GPU collaborator contract (§6): resize,
// redraw, and close notifications plus lifecycle control. The engine's
// only responsibility on resize is forwarding it to the GPU surface - the
// paint shape itself is fixed per-Painter.
type WindowOutput interface {
	Run(source FrameSource) error
	RequestClose()
}
