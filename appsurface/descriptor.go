// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package appsurface

import (
	"errors"
	"fmt"
)

// DefaultMaximumFrames is used when a descriptor leaves MaximumFrames at zero.
const DefaultMaximumFrames = 60

// Descriptor validation errors.
var (
	// ErrNilDescriptor is returned when no descriptor is supplied.
	ErrNilDescriptor = errors.New("appsurface: nil view descriptor")

	// ErrMissingView is returned when a mobile descriptor has no native view.
	ErrMissingView = errors.New("appsurface: missing native view")

	// ErrMissingLayer is returned when an iOS descriptor has no CAMetalLayer.
	ErrMissingLayer = errors.New("appsurface: missing metal layer")
)

// ViewDescriptor describes the native view a provider renders into.
//
// View and Layer are foreign addresses. They are checked for non-nullness
// and handed to the backend untouched; inapp never dereferences them.
type ViewDescriptor struct {
	// Platform is the host platform. Empty means CurrentPlatform().
	Platform Platform

	// Backend names a registered backend explicitly.
	// Empty selects the best available one.
	Backend string

	// View is the UIView* (iOS) or ANativeWindow* (Android) address.
	View uintptr

	// Layer is the CAMetalLayer* address backing the view on iOS.
	Layer uintptr

	// Width and Height are the drawable size in physical pixels.
	Width  uint32
	Height uint32

	// ScaleFactor is the ratio of physical to logical pixels.
	// Zero means 1.
	ScaleFactor float32

	// MaximumFrames is the display's maximum refresh rate hint.
	// Zero means DefaultMaximumFrames.
	MaximumFrames int32
}

// Validate checks that the descriptor carries the fields its platform needs
// and fills in defaults for optional ones.
func (d *ViewDescriptor) Validate() error {
	if d == nil {
		return ErrNilDescriptor
	}
	if d.Platform == "" {
		d.Platform = CurrentPlatform()
	}
	if d.Platform.IsMobile() && d.View == 0 {
		return fmt.Errorf("%w: platform=%s", ErrMissingView, d.Platform)
	}
	if d.Platform == PlatformIOS && d.Layer == 0 {
		return ErrMissingLayer
	}
	if d.Width == 0 || d.Height == 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, d.Width, d.Height)
	}
	if d.MaximumFrames < 0 {
		return fmt.Errorf("appsurface: invalid maximum frames: %d", d.MaximumFrames)
	}
	if d.MaximumFrames == 0 {
		d.MaximumFrames = DefaultMaximumFrames
	}
	if d.ScaleFactor <= 0 {
		d.ScaleFactor = 1
	}
	return nil
}
