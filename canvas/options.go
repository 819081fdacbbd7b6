// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"log/slog"

	"github.com/gogpu/inapp/routine"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := canvas.New(provider,
//	    canvas.WithRoutine(routine.SelectEmpty),
//	    canvas.WithNotifier(func(status int32) { log.Println(status) }),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	notifier Notifier
	selector int
	catalog  routine.Catalog
	logger   *slog.Logger
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		selector: routine.SelectShapes,
		catalog:  routine.DefaultCatalog(),
	}
}

// WithNotifier sets the host callback that receives status changes.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithRoutine selects the initial routine. Out-of-range selectors install
// the Empty routine.
func WithRoutine(selector int) Option {
	return func(o *options) {
		o.selector = selector
	}
}

// WithCatalog replaces the routine catalog selectors are resolved against.
// An empty catalog is ignored.
func WithCatalog(c routine.Catalog) Option {
	return func(o *options) {
		if len(c) > 0 {
			o.catalog = c
		}
	}
}

// WithLogger sets a logger for this canvas only.
// Without it the canvas logs through inapp.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
