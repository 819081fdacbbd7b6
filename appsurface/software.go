// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package appsurface

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SoftwareBackend is the registry name of the built-in software provider.
const SoftwareBackend = "software"

// Stats counts the surface operations a Software provider has performed.
type Stats struct {
	// Presents is the number of presented frames.
	Presents int

	// Reconfigures is the number of size changes applied to the surface.
	Reconfigures int

	// Discards is the number of frames released without presenting.
	Discards int
}

// PresentRecord describes the last presented frame.
type PresentRecord struct {
	Width  int
	Height int

	// Drawables is the number of fill, stroke and image commands submitted.
	Drawables int

	// SceneVersion is the version of the submitted scene.
	SceneVersion uint64
}

var _ Provider = (*Software)(nil)

// Software is an offscreen provider backed by a gg.Pixmap.
//
// Scenes are rasterized with the gg scene renderer; scene images are
// composited afterwards. It has no GPU device: Device, Queue and Adapter
// return nil, like a null device handle.
//
// Software is NOT safe for concurrent use.
type Software struct {
	cfg      Config
	pixmap   *gg.Pixmap
	renderer *scene.Renderer

	presented   *image.RGBA
	lastPresent PresentRecord
	stats       Stats

	inFlight bool
	closed   bool
}

// NewSoftware creates a software provider of the given size.
// Zero dimensions are allowed; such a provider cannot produce frames until
// it is reconfigured.
func NewSoftware(width, height int) (*Software, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s := &Software{
		cfg: Config{
			Width:  width,
			Height: height,
			Format: gputypes.TextureFormatRGBA8Unorm,
		},
	}
	s.allocate()
	return s, nil
}

// allocate sizes the pixmap and renderer to the current configuration.
func (s *Software) allocate() {
	if s.cfg.Empty() {
		s.pixmap = nil
		return
	}
	s.pixmap = gg.NewPixmap(s.cfg.Width, s.cfg.Height)
	if s.renderer == nil {
		s.renderer = scene.NewRenderer(s.cfg.Width, s.cfg.Height)
		return
	}
	s.renderer.Resize(s.cfg.Width, s.cfg.Height)
}

// Device returns nil: the software provider has no GPU device.
func (s *Software) Device() gpucontext.Device { return nil }

// Queue returns nil: the software provider has no GPU queue.
func (s *Software) Queue() gpucontext.Queue { return nil }

// Adapter returns nil: the software provider has no GPU adapter.
func (s *Software) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns the zero value: the software provider has no GPU adapter.
func (s *Software) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

// SurfaceFormat returns the pixel format of presented frames.
func (s *Software) SurfaceFormat() gputypes.TextureFormat { return s.cfg.Format }

// Config returns the current surface configuration.
func (s *Software) Config() Config { return s.cfg }

// Reconfigure resizes the surface. The same size is a no-op.
func (s *Software) Reconfigure(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if s.cfg.Width == width && s.cfg.Height == height {
		return nil
	}
	s.cfg.Width = width
	s.cfg.Height = height
	s.allocate()
	s.stats.Reconfigures++
	return nil
}

// AcquireFrame returns the next frame.
func (s *Software) AcquireFrame() (Frame, error) {
	switch {
	case s.closed:
		return nil, ErrSurfaceClosed
	case s.cfg.Empty():
		return nil, ErrSurfaceEmpty
	case s.inFlight:
		return nil, ErrFrameInFlight
	}
	s.inFlight = true
	return &softwareFrame{owner: s, pixmap: s.pixmap}, nil
}

// Stats returns the operation counters.
func (s *Software) Stats() Stats { return s.stats }

// LastPresent describes the most recently presented frame.
// The zero value means nothing has been presented yet.
func (s *Software) LastPresent() PresentRecord { return s.lastPresent }

// LastFrame returns the pixels of the most recently presented frame,
// or nil if nothing has been presented yet.
func (s *Software) LastFrame() *image.RGBA { return s.presented }

// Close releases the renderer. Close is idempotent.
func (s *Software) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.renderer != nil {
		s.renderer.Close()
		s.renderer = nil
	}
	s.pixmap = nil
	return nil
}

// softwareFrame is a frame acquired from a Software provider.
type softwareFrame struct {
	owner     *Software
	pixmap    *gg.Pixmap
	drawables int
	version   uint64
	done      bool
}

func (f *softwareFrame) Width() int  { return f.pixmap.Width() }
func (f *softwareFrame) Height() int { return f.pixmap.Height() }

// Submit clears the frame to base and rasterizes s onto it.
func (f *softwareFrame) Submit(s *scene.Scene, base gg.RGBA) error {
	if f.done {
		return ErrFrameDone
	}
	if f.owner.closed {
		return ErrSurfaceClosed
	}
	f.pixmap.Clear(base)
	if s == nil {
		f.drawables = 0
		return nil
	}
	if err := f.owner.renderer.Render(f.pixmap, s); err != nil {
		return fmt.Errorf("appsurface: rasterize scene: %w", err)
	}
	enc := s.Encoding()
	compositeImages(f.pixmap, enc, s.Images())
	f.drawables = DrawableCount(enc)
	f.version = s.Version()
	return nil
}

// Present publishes the frame and releases it.
func (f *softwareFrame) Present() error {
	if f.done {
		return ErrFrameDone
	}
	f.done = true
	o := f.owner
	o.inFlight = false
	if o.closed {
		return ErrSurfaceClosed
	}
	o.presented = f.pixmap.ToImage()
	o.lastPresent = PresentRecord{
		Width:        f.pixmap.Width(),
		Height:       f.pixmap.Height(),
		Drawables:    f.drawables,
		SceneVersion: f.version,
	}
	o.stats.Presents++
	return nil
}

// Discard releases the frame without presenting it.
func (f *softwareFrame) Discard() {
	if f.done {
		return
	}
	f.done = true
	f.owner.inFlight = false
	f.owner.stats.Discards++
}

// DrawableCount returns the number of fill, stroke and image commands in enc.
func DrawableCount(enc *scene.Encoding) int {
	if enc == nil {
		return 0
	}
	n := 0
	for _, tag := range enc.Tags() {
		switch tag {
		case scene.TagFill, scene.TagStroke, scene.TagImage:
			n++
		}
	}
	return n
}

// compositeImages draws the image commands of enc over pm.
// The scene rasterizer handles paths only.
func compositeImages(pm *gg.Pixmap, enc *scene.Encoding, images []*scene.Image) {
	if len(images) == 0 {
		return
	}
	dst := &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}

	dec := scene.NewDecoder(enc)
	for dec.Next() {
		switch dec.Tag() {
		case scene.TagTransform:
			_ = dec.Transform()
		case scene.TagMoveTo:
			_, _ = dec.MoveTo()
		case scene.TagLineTo:
			_, _ = dec.LineTo()
		case scene.TagQuadTo:
			_, _, _, _ = dec.QuadTo()
		case scene.TagCubicTo:
			_, _, _, _, _, _ = dec.CubicTo()
		case scene.TagFill:
			_, _ = dec.Fill()
		case scene.TagStroke:
			_, _ = dec.Stroke()
		case scene.TagPushLayer:
			_, _ = dec.PushLayer()
		case scene.TagBrush:
			_, _, _, _ = dec.Brush()
		case scene.TagImage:
			idx, t := dec.Image()
			if int(idx) < len(images) {
				drawImage(dst, images[idx], t)
			}
		}
	}
}

// drawImage composites one RGBA scene image with source-over blending.
func drawImage(dst *image.RGBA, img *scene.Image, t scene.Affine) {
	if img == nil || img.IsEmpty() || len(img.Data) < img.Width*img.Height*4 {
		return
	}
	src := &image.RGBA{
		Pix:    img.Data,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	s2d := f64.Aff3{
		float64(t.A), float64(t.B), float64(t.C),
		float64(t.D), float64(t.E), float64(t.F),
	}
	draw.ApproxBiLinear.Transform(dst, s2d, src, src.Bounds(), draw.Over, nil)
}
