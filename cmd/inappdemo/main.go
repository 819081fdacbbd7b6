// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command inappdemo drives a canvas the way a mobile host would, on an
// offscreen surface, and saves the last presented frame.
//
// Usage:
//
//	inappdemo [-config demo.toml] [-frames N] [-output frame.png]
//
// Example config:
//
//	[view]
//	width = 1200
//	height = 800
//
//	[run]
//	frames = 3
//	routine = 1
//	output = "shapes.tiff"
//	log_level = "debug"
//
//	[[run.resize]]
//	at = 1
//	width = 640
//	height = 480
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/inapp"
	"github.com/gogpu/inapp/appsurface"
	"github.com/gogpu/inapp/bridge"
	"github.com/gogpu/inapp/canvas"
	"github.com/gogpu/inapp/routine"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		frames     = flag.Int("frames", -1, "number of frames to render (overrides config)")
		output     = flag.String("output", "", "output file (overrides config)")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *frames >= 0 {
		cfg.Run.Frames = *frames
	}
	if *output != "" {
		cfg.Run.Output = *output
		cfg.Run.Format = ""
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, _ := parseLevel(cfg.Run.LogLevel)
	inapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		log.Fatalf("Failed: %v", err)
	}
	log.Printf("Frame saved to %s", cfg.Run.Output)
}

// run creates a canvas through the bridge, ticks it and saves the last frame.
func run(cfg Config) error {
	desc := &appsurface.ViewDescriptor{
		Platform:      appsurface.PlatformHeadless,
		Backend:       cfg.View.Backend,
		Width:         cfg.View.Width,
		Height:        cfg.View.Height,
		ScaleFactor:   cfg.View.ScaleFactor,
		MaximumFrames: cfg.View.MaximumFrames,
	}

	notify := func(status int32) {
		switch status {
		case canvas.StatusReady:
			inapp.Logger().Info("host notified", "status", "ready")
		case canvas.StatusClosed:
			inapp.Logger().Info("host notified", "status", "closed")
		}
	}

	h := bridge.CreateCanvas(desc, notify, canvas.WithRoutine(cfg.Run.Routine))
	if h == 0 {
		return errors.New("canvas creation failed")
	}
	defer bridge.DestroyCanvas(h)

	c := bridge.Default.Canvas(h)
	inapp.Logger().Info("demo started",
		"routine", c.RoutineName(), "catalog", routine.DefaultCatalog().Names(),
		"frames", cfg.Run.Frames)

	for i := range cfg.Run.Frames {
		for _, step := range cfg.Run.Resize {
			if step.At == i {
				bridge.Resize(h, step.Width, step.Height)
			}
		}
		bridge.EnterFrame(h)
	}

	sw, ok := c.Provider().(*appsurface.Software)
	if !ok {
		return fmt.Errorf("backend %T does not expose presented frames", c.Provider())
	}
	img := sw.LastFrame()
	if img == nil {
		return errors.New("no frame was presented")
	}
	return saveImage(cfg.Run.Output, cfg.Run.Format, img)
}

// saveImage writes img to path in the given format.
func saveImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := encodeImage(f, format, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// encodeImage encodes img as png, bmp or tiff.
func encodeImage(w io.Writer, format string, img image.Image) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}
