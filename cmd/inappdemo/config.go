// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo configuration file.
type Config struct {
	View ViewConfig `toml:"view"`
	Run  RunConfig  `toml:"run"`
}

// ViewConfig describes the offscreen view.
type ViewConfig struct {
	Width         uint32  `toml:"width"`
	Height        uint32  `toml:"height"`
	ScaleFactor   float32 `toml:"scale_factor"`
	MaximumFrames int32   `toml:"maximum_frames"`
	// Backend names a registered surface backend. Empty picks the best one.
	Backend string `toml:"backend"`
}

// RunConfig controls what the demo does with the canvas.
type RunConfig struct {
	Frames  int `toml:"frames"`
	Routine int `toml:"routine"`
	// Resize steps are applied before the frame they name.
	Resize []ResizeStep `toml:"resize"`
	Output string       `toml:"output"`
	// Format is png, bmp or tiff. Empty derives it from Output.
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
}

// ResizeStep resizes the canvas before frame At (zero-based).
type ResizeStep struct {
	At     int    `toml:"at"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		View: ViewConfig{
			Width:  1200,
			Height: 800,
		},
		Run: RunConfig{
			Frames:   1,
			Routine:  1,
			Output:   "inapp.png",
			LogLevel: "info",
		},
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes TOML from r over the defaults.
// Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("parse config at %d:%d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the run settings and fills in the output format.
func (c *Config) Validate() error {
	if c.Run.Frames < 0 {
		return fmt.Errorf("run.frames must not be negative: %d", c.Run.Frames)
	}
	for i, step := range c.Run.Resize {
		if step.At < 0 {
			return fmt.Errorf("run.resize[%d].at must not be negative: %d", i, step.At)
		}
	}
	if _, err := parseLevel(c.Run.LogLevel); err != nil {
		return err
	}

	format, err := outputFormat(c.Run.Format, c.Run.Output)
	if err != nil {
		return err
	}
	c.Run.Format = format
	return nil
}

// outputFormat returns the normalized format, derived from the output
// file extension when format is empty.
func outputFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	switch f := strings.ToLower(format); f {
	case "png", "bmp":
		return f, nil
	case "tif", "tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("unsupported output format %q (want png, bmp or tiff)", format)
}

// parseLevel maps a log level name to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
