// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin || freebsd || linux || netbsd || windows

package bridge

import (
	"github.com/ebitengine/purego"
	"github.com/gogpu/inapp/canvas"
)

// NotifierFromC wraps a C function pointer of type void (*)(int32_t).
// A zero pointer yields a nil Notifier.
func NotifierFromC(fn uintptr) canvas.Notifier {
	if fn == 0 {
		return nil
	}
	return func(status int32) {
		purego.SyscallN(fn, uintptr(status))
	}
}
