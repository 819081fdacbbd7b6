// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package routine

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
	"github.com/gogpu/inapp"
	"github.com/gogpu/inapp/appsurface"
)

// Background is the color frames are cleared to before the scene is drawn.
var Background = gg.Black

// Shape colors.
var (
	rectStrokeColor  = gg.RGB(0.9804, 0.702, 0.5294)
	circleFillColor  = gg.RGB(0.9529, 0.5451, 0.6588)
	ellipseFillColor = gg.RGB(0.7961, 0.651, 0.9686)
	lineStrokeColor  = gg.RGB(0.5373, 0.7059, 0.9804)
)

const (
	shapesStrokeWidth = 6
	shapesImageSize   = 10

	// ellipseRotation is in radians.
	ellipseRotation = -90
)

// Shapes draws a fixed scene: a stroked rounded rectangle, a filled circle,
// a filled ellipse, a stroked line and a small raster image.
//
// The scene is built once and kept for the routine's lifetime. Each frame
// resets it and adds the same drawables again, so the encoding buffers are
// reused instead of reallocated.
type Shapes struct {
	scene    *scene.Scene
	image    *scene.Image
	ellipse  *scene.PathShape
	stroke   *scene.StrokeStyle
	viewport appsurface.Config
}

// NewShapes builds the shapes scene for view.
func NewShapes(view appsurface.View) (Routine, error) {
	img := scene.NewImage(shapesImageSize, shapesImageSize)
	img.Data = make([]byte, shapesImageSize*shapesImageSize*4)
	for i := range img.Data {
		img.Data[i] = 0xff
	}

	s := &Shapes{
		scene:   scene.NewScene(),
		image:   img,
		ellipse: rotatedEllipse(250, 420, 100, 160, ellipseRotation),
		stroke: &scene.StrokeStyle{
			Width:      shapesStrokeWidth,
			MiterLimit: 10,
			Cap:        scene.LineCapButt,
			Join:       scene.LineJoinMiter,
		},
	}
	if view != nil {
		s.viewport = view.Config()
	}
	s.populate()
	return s, nil
}

// populate adds the five drawables to the scene.
func (s *Shapes) populate() {
	id := scene.IdentityAffine()

	s.scene.Stroke(s.stroke, id, scene.SolidBrush(rectStrokeColor),
		scene.NewRoundedRectShape(10, 10, 230, 230, 20))

	s.scene.Fill(scene.FillNonZero, id, scene.SolidBrush(circleFillColor),
		scene.NewCircleShape(420, 200, 120))

	s.scene.Fill(scene.FillNonZero, id, scene.SolidBrush(ellipseFillColor), s.ellipse)

	s.scene.Stroke(s.stroke, id, scene.SolidBrush(lineStrokeColor),
		scene.NewLineShape(260, 20, 620, 100))

	s.scene.DrawImage(s.image, scene.TranslateAffine(128, 128))
}

// rotatedEllipse returns an ellipse centered at (cx, cy) with radii (rx, ry),
// rotated by angle radians about its center. The rotation is baked into the
// path so the fill can use the identity transform.
func rotatedEllipse(cx, cy, rx, ry, angle float32) *scene.PathShape {
	t := scene.TranslateAffine(cx, cy).
		Multiply(scene.RotateAffine(angle)).
		Multiply(scene.TranslateAffine(-cx, -cy))
	return scene.NewPathShape(scene.NewPath().Ellipse(cx, cy, rx, ry).Transform(t))
}

// OnResize records the new viewport.
func (s *Shapes) OnResize(view appsurface.View) {
	s.viewport = view.Config()
}

// Draw rebuilds the scene in place and presents it.
func (s *Shapes) Draw(view appsurface.View) error {
	log := inapp.Logger()

	cfg := view.Config()
	if cfg.Empty() {
		log.Debug("routine: frame skipped", "routine", ShapesName, "reason", "empty surface")
		return nil
	}

	frame, err := view.AcquireFrame()
	if err != nil {
		log.Debug("routine: frame skipped", "routine", ShapesName, "err", err)
		return nil
	}

	s.scene.Reset()
	s.populate()

	if err := frame.Submit(s.scene, Background); err != nil {
		frame.Discard()
		return fmt.Errorf("routine: submit %s: %w", ShapesName, err)
	}
	if err := frame.Present(); err != nil {
		return fmt.Errorf("routine: present %s: %w", ShapesName, err)
	}
	return nil
}

// Scene returns the retained scene.
func (s *Shapes) Scene() *scene.Scene {
	return s.scene
}

// Viewport returns the surface configuration seen at construction or the
// last resize.
func (s *Shapes) Viewport() appsurface.Config {
	return s.viewport
}
