// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !darwin && !freebsd && !linux && !netbsd && !windows

package bridge

import (
	"github.com/gogpu/inapp"
	"github.com/gogpu/inapp/canvas"
)

// NotifierFromC returns nil: foreign calls are unsupported on this platform.
func NotifierFromC(fn uintptr) canvas.Notifier {
	if fn != 0 {
		inapp.Logger().Warn("bridge: host callback ignored", "reason", "unsupported platform")
	}
	return nil
}
