// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package routine

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/inapp/appsurface"
)

func newSoftware(t *testing.T, w, h int) *appsurface.Software {
	t.Helper()
	s, err := appsurface.NewSoftware(w, h)
	if err != nil {
		t.Fatalf("NewSoftware(%d, %d) = %v", w, h, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// mockFrame implements appsurface.Frame with injectable failures.
type mockFrame struct {
	submitErr  error
	presentErr error
	submitted  int
	presented  int
	discarded  int
}

func (f *mockFrame) Width() int  { return 100 }
func (f *mockFrame) Height() int { return 100 }

func (f *mockFrame) Submit(*scene.Scene, gg.RGBA) error {
	f.submitted++
	return f.submitErr
}

func (f *mockFrame) Present() error {
	f.presented++
	return f.presentErr
}

func (f *mockFrame) Discard() { f.discarded++ }

// mockView implements appsurface.View for testing.
type mockView struct {
	cfg        appsurface.Config
	frame      *mockFrame
	acquireErr error
	acquired   int
}

func (v *mockView) Device() gpucontext.Device             { return nil }
func (v *mockView) Queue() gpucontext.Queue               { return nil }
func (v *mockView) Adapter() gpucontext.Adapter           { return nil }
func (v *mockView) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }
func (v *mockView) SurfaceFormat() gputypes.TextureFormat { return v.cfg.Format }
func (v *mockView) Config() appsurface.Config             { return v.cfg }

func (v *mockView) AcquireFrame() (appsurface.Frame, error) {
	v.acquired++
	if v.acquireErr != nil {
		return nil, v.acquireErr
	}
	return v.frame, nil
}

func newMockView() *mockView {
	return &mockView{
		cfg:   appsurface.Config{Width: 100, Height: 100, Format: gputypes.TextureFormatBGRA8Unorm},
		frame: &mockFrame{},
	}
}

func TestEmptyDraw(t *testing.T) {
	sw := newSoftware(t, 64, 64)

	r, err := NewEmpty(sw)
	if err != nil {
		t.Fatalf("NewEmpty() = %v", err)
	}
	r.OnResize(sw)
	for range 3 {
		if err := r.Draw(sw); err != nil {
			t.Fatalf("Draw() = %v", err)
		}
	}
	if sw.Stats().Presents != 0 {
		t.Errorf("Presents = %d, want 0", sw.Stats().Presents)
	}
}

func TestShapesDraw(t *testing.T) {
	sw := newSoftware(t, 1200, 800)

	r, err := NewShapes(sw)
	if err != nil {
		t.Fatalf("NewShapes() = %v", err)
	}
	if err := r.Draw(sw); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	if got := sw.Stats().Presents; got != 1 {
		t.Fatalf("Presents = %d, want 1", got)
	}
	rec := sw.LastPresent()
	if rec.Drawables != 5 {
		t.Errorf("Drawables = %d, want 5", rec.Drawables)
	}
	if rec.Width != 1200 || rec.Height != 800 {
		t.Errorf("present size = %dx%d, want 1200x800", rec.Width, rec.Height)
	}

	// The raster image sits at (128, 128) and is opaque white.
	if c := sw.LastFrame().RGBAAt(133, 133); c.R != 0xff || c.G != 0xff || c.B != 0xff {
		t.Errorf("image pixel = %v, want white", c)
	}
	// Far corner is untouched background.
	if c := sw.LastFrame().RGBAAt(1190, 790); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("background pixel = %v, want black", c)
	}
}

func TestShapesEllipseRotation(t *testing.T) {
	sw := newSoftware(t, 1200, 800)
	r, err := NewShapes(sw)
	if err != nil {
		t.Fatalf("NewShapes() = %v", err)
	}
	if err := r.Draw(sw); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	frame := sw.LastFrame()

	// The major axis (radius 160) points along (-sin(-90), cos(-90)) from (250, 420).
	tests := []struct {
		name   string
		x, y   int
		inside bool
	}{
		{"center", 250, 420, true},
		{"along major axis", 384, 353, true},
		{"opposite major axis", 116, 487, true},
		{"unrotated major axis", 400, 420, false},
		{"unrotated major axis, far side", 100, 420, false},
	}
	for _, tt := range tests {
		c := frame.RGBAAt(tt.x, tt.y)
		filled := c.B > 0xc0 && c.R > 0x80
		if filled != tt.inside {
			t.Errorf("%s: pixel (%d, %d) = %v, inside = %v, want %v", tt.name, tt.x, tt.y, c, filled, tt.inside)
		}
	}
}

func TestShapesReusesScene(t *testing.T) {
	sw := newSoftware(t, 700, 600)

	r, err := NewShapes(sw)
	if err != nil {
		t.Fatalf("NewShapes() = %v", err)
	}
	shapes := r.(*Shapes)
	sc := shapes.Scene()

	for i := range 3 {
		if err := r.Draw(sw); err != nil {
			t.Fatalf("Draw() #%d = %v", i, err)
		}
		if shapes.Scene() != sc {
			t.Fatal("scene was reallocated between frames")
		}
		if got := sw.LastPresent().Drawables; got != 5 {
			t.Errorf("frame %d: Drawables = %d, want 5", i, got)
		}
	}
	if got := sw.Stats().Presents; got != 3 {
		t.Errorf("Presents = %d, want 3", got)
	}
}

func TestShapesSkipsEmptySurface(t *testing.T) {
	sw := newSoftware(t, 100, 100)
	r, _ := NewShapes(sw)

	if err := sw.Reconfigure(0, 0); err != nil {
		t.Fatalf("Reconfigure(0, 0) = %v", err)
	}
	r.OnResize(sw)
	if err := r.Draw(sw); err != nil {
		t.Fatalf("Draw() on empty surface = %v, want nil", err)
	}
	if sw.Stats().Presents != 0 {
		t.Errorf("Presents = %d, want 0", sw.Stats().Presents)
	}
}

func TestShapesSkipsFrameInFlight(t *testing.T) {
	sw := newSoftware(t, 100, 100)
	r, _ := NewShapes(sw)

	held, err := sw.AcquireFrame()
	if err != nil {
		t.Fatalf("AcquireFrame() = %v", err)
	}
	defer held.Discard()

	if err := r.Draw(sw); err != nil {
		t.Fatalf("Draw() with frame in flight = %v, want nil", err)
	}
	if sw.Stats().Presents != 0 {
		t.Errorf("Presents = %d, want 0", sw.Stats().Presents)
	}
}

func TestShapesAcquireFailureIsSkipped(t *testing.T) {
	v := newMockView()
	v.acquireErr = errors.New("device busy")
	r, _ := NewShapes(v)

	if err := r.Draw(v); err != nil {
		t.Errorf("Draw() = %v, want nil on acquisition failure", err)
	}
	if v.acquired != 1 {
		t.Errorf("acquired = %d, want 1", v.acquired)
	}
}

func TestShapesSubmitFailure(t *testing.T) {
	v := newMockView()
	submitErr := errors.New("out of memory")
	v.frame.submitErr = submitErr
	r, _ := NewShapes(v)

	err := r.Draw(v)
	if !errors.Is(err, submitErr) {
		t.Fatalf("Draw() = %v, want wrapped submit error", err)
	}
	if v.frame.discarded != 1 {
		t.Errorf("discarded = %d, want 1", v.frame.discarded)
	}
	if v.frame.presented != 0 {
		t.Errorf("presented = %d, want 0", v.frame.presented)
	}
}

func TestShapesPresentFailure(t *testing.T) {
	v := newMockView()
	presentErr := errors.New("surface lost")
	v.frame.presentErr = presentErr
	r, _ := NewShapes(v)

	if err := r.Draw(v); !errors.Is(err, presentErr) {
		t.Fatalf("Draw() = %v, want wrapped present error", err)
	}
}

func TestShapesOnResize(t *testing.T) {
	v := newMockView()
	r, _ := NewShapes(v)
	shapes := r.(*Shapes)

	if vp := shapes.Viewport(); vp.Width != 100 || vp.Height != 100 {
		t.Errorf("initial viewport = %dx%d, want 100x100", vp.Width, vp.Height)
	}

	v.cfg.Width, v.cfg.Height = 320, 240
	r.OnResize(v)
	if vp := shapes.Viewport(); vp.Width != 320 || vp.Height != 240 {
		t.Errorf("viewport = %dx%d, want 320x240", vp.Width, vp.Height)
	}
}

func TestCatalogResolve(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		selector int
		wantName string
		wantOK   bool
	}{
		{SelectEmpty, EmptyName, true},
		{SelectShapes, ShapesName, true},
		{2, EmptyName, false},
		{5, EmptyName, false},
		{-1, EmptyName, false},
	}
	for _, tt := range tests {
		e, ok := c.Resolve(tt.selector)
		if e.Name != tt.wantName || ok != tt.wantOK {
			t.Errorf("Resolve(%d) = (%s, %v), want (%s, %v)", tt.selector, e.Name, ok, tt.wantName, tt.wantOK)
		}
	}
}

func TestCatalogNew(t *testing.T) {
	v := newMockView()
	c := DefaultCatalog()

	r, err := c.New(SelectShapes, v)
	if err != nil {
		t.Fatalf("New(shapes) = %v", err)
	}
	if _, ok := r.(*Shapes); !ok {
		t.Errorf("New(shapes) = %T, want *Shapes", r)
	}

	r, err = c.New(42, v)
	if err != nil {
		t.Fatalf("New(42) = %v", err)
	}
	if _, ok := r.(Empty); !ok {
		t.Errorf("New(42) = %T, want Empty", r)
	}
}

func TestCatalogNewError(t *testing.T) {
	ctorErr := errors.New("renderer unavailable")
	c := Catalog{
		{Name: "broken", New: func(appsurface.View) (Routine, error) { return nil, ctorErr }},
	}

	_, err := c.New(0, newMockView())
	if !errors.Is(err, ctorErr) {
		t.Errorf("New() = %v, want wrapped constructor error", err)
	}
}

func TestCatalogNames(t *testing.T) {
	names := DefaultCatalog().Names()
	if len(names) != 2 || names[0] != EmptyName || names[1] != ShapesName {
		t.Errorf("Names() = %v, want [empty shapes]", names)
	}
}
