package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWarpMapHubDwellTiming covers the §4.4 dwell scenario: the hub
// dispatches a bake as soon as it is started, but a second Step call made
// immediately afterward - well inside ModeSwitchDwell - must not install a
// second fresh map.
func TestWarpMapHubDwellTiming(t *testing.T) {
	hub := NewWarpMapHub()
	defer hub.Close()

	settings := Settings{Fxw: 8, Fxh: 8, YRoi: YRoi{Min: 0, Max: 8}}
	library := NewModeLibrary()
	g := NewGlobals(1)

	var wm *WarpMap
	var ok bool
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.Step(settings, library, g)
		if _, wm, ok = hub.Fetch(); ok {
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.True(t, ok, "hub should install a fresh map well within 2s for an 8x8 bake")
	assert.Equal(t, 64, wm.Len())

	hub.Step(settings, library, g)
	_, _, ok2 := hub.Fetch()
	assert.False(t, ok2, "a Step call inside the dwell window must not produce a second install")
}

func TestWarpMapHubCloseJoinsWorker(t *testing.T) {
	hub := NewWarpMapHub()
	done := make(chan struct{})
	go func() {
		hub.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return - worker goroutine failed to join")
	}
}
