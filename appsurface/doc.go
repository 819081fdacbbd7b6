// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package appsurface defines the render surface provider consumed by a canvas.
//
// A provider owns the GPU device, the command queue and the presentable
// surface that belong to one native view. inapp never creates these itself:
// a platform integration opens them from a [ViewDescriptor] and hands the
// result over as a [Provider]. The canvas only reads the surface
// configuration and delegates frame acquisition, submission, presentation
// and reconfiguration.
//
// # Providers
//
//   - Software: offscreen gg.Pixmap surface, used on desktop and headless
//     hosts and as the fallback when no native backend is registered
//   - Native backends (Metal, Vulkan) are registered by platform
//     integrations through [Register] with a higher priority
//
// # Registry
//
//	func init() {
//	    appsurface.Register("metal", 100, openMetal, metalAvailable)
//	}
//
//	p, err := appsurface.Open(desc) // best available, or desc.Backend
//
// # Frame Errors
//
// [ErrSurfaceEmpty], [ErrFrameInFlight] and [ErrSurfaceClosed] are transient:
// the caller skips the tick and tries again on the next one. Use
// [IsTransient] to classify an acquisition error.
package appsurface
