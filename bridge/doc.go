// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package bridge exposes canvases to foreign hosts through opaque handles.
//
// A host never holds a Go pointer. CreateCanvas returns a Handle, an integer
// key into the bridge's handle table, which the host passes back on every
// call:
//
//	h := bridge.CreateCanvas(&desc, bridge.NotifierFromC(callback))
//	if h == 0 {
//	    // creation failed; details are logged
//	}
//	bridge.Resize(h, 1200, 800)
//	bridge.EnterFrame(h)
//	bridge.SwitchRoutine(h, 0)
//	bridge.DestroyCanvas(h)
//
// # Caller Obligations
//
//   - Serialize all calls on one handle.
//   - Call DestroyCanvas exactly once per handle.
//   - Never use a handle after DestroyCanvas.
//
// Violations are not recoverable: operations on the zero handle panic with
// ErrNilHandle and operations on an unknown or destroyed handle panic with
// ErrStaleHandle.
package bridge
