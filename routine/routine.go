// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package routine

import (
	"github.com/gogpu/inapp/appsurface"
)

// Routine is a swappable unit of per-frame drawing logic.
//
// Draw skips the tick on transient frame acquisition failures and returns
// nil; a returned error means submission or presentation failed.
type Routine interface {
	// OnResize is called after the surface was reconfigured.
	OnResize(view appsurface.View)

	// Draw renders and presents one frame.
	Draw(view appsurface.View) error
}

// Base provides the default no-op OnResize. Embed it in routines that keep
// no size-dependent state.
type Base struct{}

// OnResize does nothing.
func (Base) OnResize(appsurface.View) {}

// Empty is the no-op routine.
type Empty struct {
	Base
}

// NewEmpty returns the no-op routine.
func NewEmpty(appsurface.View) (Routine, error) {
	return Empty{}, nil
}

// Draw does nothing.
func (Empty) Draw(appsurface.View) error { return nil }
