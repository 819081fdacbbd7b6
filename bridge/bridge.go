// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/inapp"
	"github.com/gogpu/inapp/appsurface"
	"github.com/gogpu/inapp/canvas"
)

// Handle is an opaque reference to one canvas, safe to store in foreign memory.
// The zero Handle is invalid.
type Handle uintptr

// Contract violations. Bridge operations panic with these errors.
var (
	// ErrNilHandle is the panic value for operations on the zero handle.
	ErrNilHandle = errors.New("bridge: nil handle")

	// ErrStaleHandle is the panic value for operations on a handle that was
	// never issued or has been destroyed.
	ErrStaleHandle = errors.New("bridge: stale handle")
)

// Opener opens a surface provider for a view descriptor.
type Opener func(desc *appsurface.ViewDescriptor) (appsurface.Provider, error)

// Bridge maps handles to canvases.
//
// The handle table is safe for concurrent use, so distinct handles may be
// driven from different threads. Calls on one handle must be serialized by
// the caller.
type Bridge struct {
	open Opener

	mu       sync.Mutex
	canvases map[Handle]*canvas.Canvas
	next     Handle
}

// Default is the process-wide bridge used by the package-level functions.
var Default = New()

// New creates a bridge that opens providers from the global appsurface registry.
func New() *Bridge {
	return NewWithOpener(appsurface.Open)
}

// NewWithRegistry creates a bridge that opens providers from r.
func NewWithRegistry(r *appsurface.Registry) *Bridge {
	return NewWithOpener(r.Open)
}

// NewWithOpener creates a bridge that opens providers with open.
func NewWithOpener(open Opener) *Bridge {
	return &Bridge{
		open:     open,
		canvases: make(map[Handle]*canvas.Canvas),
		next:     1,
	}
}

// CreateCanvas opens a provider for desc, builds a canvas on it and returns
// its handle. notify may be nil.
//
// Any failure is logged and yields the zero handle; nothing is left
// allocated in that case.
func (b *Bridge) CreateCanvas(desc *appsurface.ViewDescriptor, notify canvas.Notifier, opts ...canvas.Option) Handle {
	log := inapp.Logger()

	provider, err := b.open(desc)
	if err != nil {
		log.Warn("bridge: create canvas failed", "stage", "open surface", "err", err)
		return 0
	}

	opts = append([]canvas.Option{canvas.WithNotifier(notify)}, opts...)
	c, err := canvas.New(provider, opts...)
	if err != nil {
		if cerr := provider.Close(); cerr != nil {
			log.Warn("bridge: close provider failed", "err", cerr)
		}
		log.Warn("bridge: create canvas failed", "stage", "install routine", "err", err)
		return 0
	}

	b.mu.Lock()
	h := b.next
	b.next++
	b.canvases[h] = c
	b.mu.Unlock()

	log.Debug("bridge: handle issued", "handle", uintptr(h))
	return h
}

// lookup borrows the canvas for h. It panics on the zero or a stale handle.
func (b *Bridge) lookup(h Handle) *canvas.Canvas {
	if h == 0 {
		panic(ErrNilHandle)
	}
	b.mu.Lock()
	c, ok := b.canvases[h]
	b.mu.Unlock()
	if !ok {
		panic(fmt.Errorf("%w: %#x", ErrStaleHandle, uintptr(h)))
	}
	return c
}

// EnterFrame renders one frame on the canvas for h.
// Rendering errors are logged.
func (b *Bridge) EnterFrame(h Handle) {
	if err := b.lookup(h).EnterFrame(); err != nil {
		inapp.Logger().Warn("bridge: enter frame failed", "handle", uintptr(h), "err", err)
	}
}

// Resize reconfigures the surface of the canvas for h.
// Errors are logged.
func (b *Bridge) Resize(h Handle, width, height uint32) {
	if err := b.lookup(h).Resize(int(width), int(height)); err != nil {
		inapp.Logger().Warn("bridge: resize failed", "handle", uintptr(h),
			"width", width, "height", height, "err", err)
	}
}

// SwitchRoutine installs the routine at selector on the canvas for h.
// Errors are logged and leave the previous routine active.
func (b *Bridge) SwitchRoutine(h Handle, selector int32) {
	if err := b.lookup(h).SwitchRoutine(int(selector)); err != nil {
		inapp.Logger().Warn("bridge: switch routine failed", "handle", uintptr(h),
			"selector", selector, "err", err)
	}
}

// DestroyCanvas closes the canvas for h and invalidates the handle.
// It panics on the zero or a stale handle, including a second destroy.
func (b *Bridge) DestroyCanvas(h Handle) {
	if h == 0 {
		panic(ErrNilHandle)
	}
	b.mu.Lock()
	c, ok := b.canvases[h]
	delete(b.canvases, h)
	b.mu.Unlock()
	if !ok {
		panic(fmt.Errorf("%w: %#x", ErrStaleHandle, uintptr(h)))
	}

	if err := c.Close(); err != nil {
		inapp.Logger().Warn("bridge: destroy canvas failed", "handle", uintptr(h), "err", err)
	}
}

// Canvas returns the canvas for h without transferring ownership.
// It panics on the zero or a stale handle.
func (b *Bridge) Canvas(h Handle) *canvas.Canvas {
	return b.lookup(h)
}

// Live returns the number of canvases not yet destroyed.
func (b *Bridge) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.canvases)
}

// CreateCanvas creates a canvas on the Default bridge.
func CreateCanvas(desc *appsurface.ViewDescriptor, notify canvas.Notifier, opts ...canvas.Option) Handle {
	return Default.CreateCanvas(desc, notify, opts...)
}

// EnterFrame renders one frame on the Default bridge.
func EnterFrame(h Handle) {
	Default.EnterFrame(h)
}

// Resize resizes a canvas on the Default bridge.
func Resize(h Handle, width, height uint32) {
	Default.Resize(h, width, height)
}

// SwitchRoutine switches the routine of a canvas on the Default bridge.
func SwitchRoutine(h Handle, selector int32) {
	Default.SwitchRoutine(h, selector)
}

// DestroyCanvas destroys a canvas on the Default bridge.
func DestroyCanvas(h Handle) {
	Default.DestroyCanvas(h)
}

// Live returns the number of live canvases on the Default bridge.
func Live() int {
	return Default.Live()
}
