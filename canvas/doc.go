// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas ties a render surface provider to one active render routine.
//
// A Canvas owns its provider and exactly one routine at a time. The host
// drives it one call at a time:
//
//	provider -> Canvas.EnterFrame -> routine.Draw -> Frame.Submit/Present
//
// # Lifecycle
//
//	c, err := canvas.New(provider, canvas.WithNotifier(notify))
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	for host.Running() {
//	    _ = c.EnterFrame()
//	}
//
// New installs the Empty routine first and then the selected routine
// (Shapes by default). Once installation succeeds the notifier receives
// StatusReady. Close releases the routine and the provider and sends
// StatusClosed.
//
// # Resize
//
// Resize reconfigures the provider and informs the routine. Repeating the
// current size is a no-op, and a zero-area size is accepted: frames on such
// a surface are skipped silently.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. The host serializes all calls on
// one canvas.
package canvas
