// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/inapp"
	"github.com/gogpu/inapp/appsurface"
	"github.com/gogpu/inapp/routine"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrNilProvider is returned when a nil Provider is passed.
	ErrNilProvider = errors.New("canvas: nil Provider")
)

// Status codes delivered to a Notifier.
const (
	// StatusReady is sent once, after the initial routine is installed.
	StatusReady int32 = 0

	// StatusClosed is sent once, after the canvas is closed.
	StatusClosed int32 = 1
)

// Notifier receives canvas status changes. It is called synchronously on
// the goroutine that made the triggering call.
type Notifier func(status int32)

// routineCloser is implemented by routines that hold releasable resources.
type routineCloser interface {
	Close() error
}

// Canvas drives one render routine on one surface provider.
//
// Canvas is NOT safe for concurrent use. The host serializes all calls.
type Canvas struct {
	provider appsurface.Provider
	catalog  routine.Catalog
	notifier Notifier
	logger   *slog.Logger

	routine  routine.Routine
	name     string
	selector int

	frames uint64
	closed bool
}

// New creates a Canvas that takes ownership of provider.
//
// The Empty routine is installed first, then the routine selected with
// WithRoutine (Shapes by default). If constructing it fails, New returns
// the error and the caller keeps ownership of provider.
// On success the notifier receives StatusReady.
func New(provider appsurface.Provider, opts ...Option) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		provider: provider,
		catalog:  o.catalog,
		notifier: o.notifier,
		logger:   o.logger,
		routine:  routine.Empty{},
		name:     routine.EmptyName,
		selector: routine.SelectEmpty,
	}

	if err := c.install(o.selector); err != nil {
		return nil, err
	}

	cfg := provider.Config()
	c.log().Info("canvas created",
		"routine", c.name, "width", cfg.Width, "height", cfg.Height)
	c.notify(StatusReady)
	return c, nil
}

// log returns the canvas logger.
func (c *Canvas) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return inapp.Logger()
}

// notify invokes the notifier if one is set.
func (c *Canvas) notify(status int32) {
	if c.notifier != nil {
		c.notifier(status)
	}
}

// install constructs the routine for selector and makes it active.
// The active routine is left untouched when construction fails.
func (c *Canvas) install(selector int) error {
	entry, ok := c.catalog.Resolve(selector)
	if !ok {
		c.log().Debug("canvas: selector out of range",
			"selector", selector, "routine", entry.Name)
	}

	r, err := c.catalog.New(selector, c.provider)
	if err != nil {
		return err
	}

	c.closeRoutine()
	c.routine = r
	c.name = entry.Name
	c.selector = selector
	return nil
}

// closeRoutine releases the active routine if it holds resources.
func (c *Canvas) closeRoutine() {
	rc, ok := c.routine.(routineCloser)
	if !ok {
		return
	}
	if err := rc.Close(); err != nil {
		c.log().Warn("canvas: routine close failed", "routine", c.name, "err", err)
	}
}

// EnterFrame renders one frame with the active routine.
//
// A zero-area or temporarily unavailable surface skips the frame and
// returns nil. A returned error leaves the canvas usable.
func (c *Canvas) EnterFrame() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.frames++
	if err := c.routine.Draw(c.provider); err != nil {
		return fmt.Errorf("canvas: frame %d: %w", c.frames, err)
	}
	return nil
}

// Resize reconfigures the surface and notifies the active routine.
//
// Resizing to the current size is a no-op. Zero dimensions are accepted.
// Resize may be called before the first frame.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	cfg := c.provider.Config()
	if cfg.Width == width && cfg.Height == height {
		return nil
	}

	if err := c.provider.Reconfigure(width, height); err != nil {
		return fmt.Errorf("canvas: reconfigure failed: %w", err)
	}
	c.routine.OnResize(c.provider)

	c.log().Debug("canvas resized", "width", width, "height", height)
	return nil
}

// SwitchRoutine replaces the active routine with the one at selector.
// Out-of-range selectors install the Empty routine. If construction fails
// the previous routine stays active.
func (c *Canvas) SwitchRoutine(selector int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	prev := c.name
	if err := c.install(selector); err != nil {
		return fmt.Errorf("canvas: switch routine: %w", err)
	}
	c.log().Info("routine switched", "from", prev, "to", c.name, "selector", selector)
	return nil
}

// RoutineName returns the catalog name of the active routine.
func (c *Canvas) RoutineName() string {
	return c.name
}

// Selector returns the selector the active routine was installed with.
func (c *Canvas) Selector() int {
	return c.selector
}

// Config returns the current surface configuration.
func (c *Canvas) Config() appsurface.Config {
	return c.provider.Config()
}

// Frames returns the number of EnterFrame calls made on the open canvas.
func (c *Canvas) Frames() uint64 {
	return c.frames
}

// Provider returns the owned surface provider.
func (c *Canvas) Provider() appsurface.Provider {
	return c.provider
}

// IsClosed returns true if the canvas has been closed.
func (c *Canvas) IsClosed() bool {
	return c.closed
}

// Close releases the active routine and the provider, then sends
// StatusClosed. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.closeRoutine()
	c.routine = routine.Empty{}
	c.name = routine.EmptyName

	err := c.provider.Close()
	c.log().Info("canvas destroyed", "frames", c.frames)
	c.notify(StatusClosed)
	if err != nil {
		return fmt.Errorf("canvas: close provider: %w", err)
	}
	return nil
}
