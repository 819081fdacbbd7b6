// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package inapp hosts a gg render canvas inside a native iOS or Android view.
//
// # Overview
//
// inapp owns one render surface per native view, drives a swappable render
// routine once per host frame tick, and exposes the whole thing to the host
// application through an opaque handle that crosses a C boundary.
//
// # Architecture
//
// The module is organized into:
//   - appsurface: the render surface provider contract, view descriptors,
//     the provider registry and an offscreen software provider
//   - routine: per-frame drawing units (Empty, Shapes) and the selector catalog
//   - canvas: the lifecycle of one surface plus its active routine
//   - bridge: the handle registry behind the exported C entry points
//
// Data flow for one frame tick:
//
//	host -> bridge.EnterFrame(h) -> Canvas.EnterFrame -> Routine.Draw(view)
//	     -> view.AcquireFrame -> Frame.Submit(scene) -> Frame.Present
//
// # Logging
//
// inapp is silent by default. Call [SetLogger] to route lifecycle events and
// skipped-frame diagnostics to a [log/slog] handler.
//
// # Thread Safety
//
// Nothing in inapp locks a canvas. The host must serialize every call made
// against one handle.
package inapp

// Version information
const (
	// Version is the current version of the module
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
