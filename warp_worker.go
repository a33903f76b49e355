// warp_worker.go - background warp-map baking and the foreground hub (C6)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"errors"
	"time"
)

var errWorkerDisconnected = errors.New("warp worker disconnected")

// ModeSwitchDwell is the wall-clock dwell time between mode switches,
// independent of framerate (§4.4).
const ModeSwitchDwell = 3 * time.Second

// EffectKind indexes the 8-element effect mask (§3 "Effect mask").
type EffectKind int

const (
	EffectChasers EffectKind = iota
	EffectBar
	EffectDots
	EffectSolar
	EffectGrid
	EffectNuclide
	EffectShade
	EffectSpectral
	effectKindCount
)

// EffectMask is a fixed 8-element boolean vector over the effect kinds
// (§3). If Grid is set, Bar must be cleared (§3 invariant, §8 invariant 4).
type EffectMask [effectKindCount]bool

func (m EffectMask) Has(k EffectKind) bool { return m[k] }
func (m EffectMask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// WarpSpec is the snapshot of everything needed to bake a warp and drive
// its effects for one mode's dwell period (§3).
type WarpSpec struct {
	Settings        Settings
	Mode            int
	Waveform        int
	EffectMask      EffectMask
	Center          Vec2
	WeightsumFactor float32
	Damping         float32
	Transform       Transform
}

type workerRequestKind int

const (
	workerStart workerRequestKind = iota
	workerTerminate
)

type workerRequest struct {
	kind workerRequestKind
	spec WarpSpec
}

// WarpMapHub is the foreground side of the worker/reply pair (§4.4). It
// never blocks the render thread: step() dispatches or polls without
// waiting, fetch() hands over an installed (spec, map) pair exactly once.
type WarpMapHub struct {
	reqCh   chan workerRequest
	replyCh chan *WarpMap
	done    chan struct{}

	workerBusy     bool
	pendingSpec    *WarpSpec
	installedSpec  *WarpSpec
	installedMap   *WarpMap
	nextSwitchTime time.Time
}

// NewWarpMapHub starts the worker goroutine and returns the hub.
func NewWarpMapHub() *WarpMapHub {
	h := &WarpMapHub{
		reqCh:          make(chan workerRequest, 1),
		replyCh:        make(chan *WarpMap, 1),
		done:           make(chan struct{}),
		nextSwitchTime: time.Now(),
	}
	go h.run()
	return h
}

func (h *WarpMapHub) run() {
	defer close(h.done)
	for req := range h.reqCh {
		if req.kind == workerTerminate {
			return
		}
		m := Bake(req.spec.Settings, req.spec.Center, req.spec.WeightsumFactor, req.spec.Damping, req.spec.Transform)
		h.replyCh <- m
	}
}

// Step implements §4.4's step(): dispatch a new bake if idle and the dwell
// has elapsed, and non-blockingly collect a finished bake if one is
// in-flight. Never blocks.
func (h *WarpMapHub) Step(settings Settings, library *ModeLibrary, g *Globals) {
	now := time.Now()

	if !h.workerBusy && now.After(h.nextSwitchTime) {
		spec := GenerateWarpSpec(settings, library, g)
		select {
		case h.reqCh <- workerRequest{kind: workerStart, spec: spec}:
			h.workerBusy = true
			specCopy := spec
			h.pendingSpec = &specCopy
		default:
			// Worker busy (shouldn't happen since workerBusy is false here,
			// but the channel send is kept non-blocking per §4.4's
			// "no queueing" contract for safety).
		}
		h.nextSwitchTime = now.Add(ModeSwitchDwell)
		fps := g.FPS.Reset()
		g.FPSAtLastModeSwitch = fps
		g.TimeScale = 30 / clampF32(fps, 10, 120)
	}

	if h.workerBusy {
		select {
		case m, ok := <-h.replyCh:
			if !ok {
				logger.Error("warp worker disconnected", "err", errWorkerDisconnected)
				h.workerBusy = false
				h.pendingSpec = nil
				return
			}
			h.installedSpec = h.pendingSpec
			h.installedMap = m
			h.pendingSpec = nil
			h.workerBusy = false
		default:
		}
	}
}

// Fetch takes ownership of the installed fresh (spec, map) pair, if any.
// After a successful Fetch the hub has none until the next cycle (§4.4).
func (h *WarpMapHub) Fetch() (WarpSpec, *WarpMap, bool) {
	if h.installedSpec == nil || h.installedMap == nil {
		return WarpSpec{}, nil, false
	}
	spec := *h.installedSpec
	m := h.installedMap
	h.installedSpec = nil
	h.installedMap = nil
	return spec, m, true
}

// Close sends Terminate and joins the worker (§5 "Cancellation").
func (h *WarpMapHub) Close() {
	select {
	case h.reqCh <- workerRequest{kind: workerTerminate}:
	default:
		// reqCh already holds a queued Start, so Terminate is not sent;
		// the worker bakes that request and then exits when its range
		// over the closed reqCh ends.
	}
	close(h.reqCh)
	<-h.done
}
