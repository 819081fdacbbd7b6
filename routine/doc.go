// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package routine provides the per-frame drawing units a canvas drives.
//
// A [Routine] reacts to surface resizes and draws one frame per tick through
// the read-only [appsurface.View] it is handed. It never touches canvas
// state directly.
//
// # Variants
//
//   - [Empty]: draws nothing; the placeholder a canvas installs first
//   - [Shapes]: a retained scene of five drawables, rebuilt in place and
//     presented every frame
//
// Routines are selected by index through a [Catalog]. Selectors outside
// the catalog resolve to [Empty].
package routine
