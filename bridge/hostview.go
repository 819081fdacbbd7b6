// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"github.com/gogpu/inapp/appsurface"
	"github.com/gogpu/inapp/canvas"
)

// HostView mirrors the inapp_view_obj struct a C host passes when it creates
// a canvas. View, Layer and Callback are foreign addresses; zero means null.
type HostView struct {
	View          uintptr
	Layer         uintptr
	Width         uint32
	Height        uint32
	ScaleFactor   float32
	MaximumFrames int32
	Platform      string
	Callback      uintptr
}

// Descriptor converts v to a view descriptor. The result is not validated:
// an empty Platform stays empty and Validate resolves it later.
func (v HostView) Descriptor() *appsurface.ViewDescriptor {
	return &appsurface.ViewDescriptor{
		Platform:      appsurface.Platform(v.Platform),
		View:          v.View,
		Layer:         v.Layer,
		Width:         v.Width,
		Height:        v.Height,
		ScaleFactor:   v.ScaleFactor,
		MaximumFrames: v.MaximumFrames,
	}
}

// Notifier returns the host callback, or nil when Callback is zero.
func (v HostView) Notifier() canvas.Notifier {
	return NotifierFromC(v.Callback)
}

// CreateHostCanvas creates a canvas for a host view object.
func (b *Bridge) CreateHostCanvas(v HostView, opts ...canvas.Option) Handle {
	return b.CreateCanvas(v.Descriptor(), v.Notifier(), opts...)
}

// CreateHostCanvas creates a canvas for a host view object on the Default bridge.
func CreateHostCanvas(v HostView, opts ...canvas.Option) Handle {
	return Default.CreateHostCanvas(v, opts...)
}
