// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package appsurface

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Common errors returned by providers.
var (
	// ErrInvalidDimensions is returned when a width or height is out of range.
	ErrInvalidDimensions = errors.New("appsurface: invalid dimensions")

	// ErrSurfaceEmpty is returned by AcquireFrame while the surface has zero area.
	ErrSurfaceEmpty = errors.New("appsurface: surface has zero area")

	// ErrFrameInFlight is returned by AcquireFrame while a previous frame
	// has been neither presented nor discarded.
	ErrFrameInFlight = errors.New("appsurface: frame already in flight")

	// ErrSurfaceClosed is returned when a closed provider is used.
	ErrSurfaceClosed = errors.New("appsurface: surface is closed")

	// ErrFrameDone is returned when a presented or discarded frame is reused.
	ErrFrameDone = errors.New("appsurface: frame already presented or discarded")
)

// IsTransient reports whether err is a frame acquisition failure that
// should skip the current tick rather than abort rendering.
func IsTransient(err error) bool {
	return errors.Is(err, ErrSurfaceEmpty) ||
		errors.Is(err, ErrFrameInFlight) ||
		errors.Is(err, ErrSurfaceClosed)
}

// Config is the current configuration of a presentable surface.
type Config struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Format is the pixel format of the presentable textures.
	Format gputypes.TextureFormat
}

// Empty reports whether the surface has zero area.
func (c Config) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Frame is one acquired presentable texture.
//
// A frame must end with exactly one call to Present or Discard.
type Frame interface {
	// Width returns the frame width in pixels.
	Width() int

	// Height returns the frame height in pixels.
	Height() int

	// Submit rasterizes s onto the frame over the base color.
	// The scene is read, never modified beyond flattening its layers.
	Submit(s *scene.Scene, base gg.RGBA) error

	// Present queues the frame for display and releases it.
	Present() error

	// Discard releases the frame without presenting it.
	Discard()
}

// View is the read-only surface view handed to render routines.
type View interface {
	gpucontext.DeviceProvider

	// Config returns the current surface configuration.
	Config() Config

	// AcquireFrame returns the next presentable frame.
	// Errors satisfying IsTransient mean the tick should be skipped.
	AcquireFrame() (Frame, error)
}

// Provider owns a device, a queue and a presentable surface for one native view.
//
// Providers are NOT safe for concurrent use.
type Provider interface {
	View

	// Reconfigure resizes the presentable surface.
	// Reconfiguring to the current size is a no-op. Zero dimensions are
	// accepted and leave the surface unable to produce frames.
	Reconfigure(width, height int) error

	// Close releases the surface. Close is idempotent.
	Close() error
}
