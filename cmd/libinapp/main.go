// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command libinapp builds the C library that iOS and Android hosts link.
//
// Build:
//
//	go build -buildmode=c-shared -o libinapp.so ./cmd/libinapp
//	go build -buildmode=c-archive -o libinapp.a ./cmd/libinapp
//
// The generated header declares inapp_view_obj and the five entry points.
// Set INAPP_LOG=debug|info|warn|error to log to stderr.
package main

/*
#include <stdint.h>

typedef struct {
	void *view;
	void *metal_layer;
	uint32_t width;
	uint32_t height;
	float scale_factor;
	int32_t maximum_frames;
	const char *platform;
	void (*callback_to_app)(int32_t);
} inapp_view_obj;
*/
import "C"

import (
	"log/slog"
	"os"
	"strings"
	"unsafe"

	"github.com/gogpu/inapp"
	"github.com/gogpu/inapp/bridge"
)

func init() {
	level, ok := parseLevel(os.Getenv("INAPP_LOG"))
	if !ok {
		return
	}
	inapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// hostView copies the C view object into its Go mirror.
func hostView(obj C.inapp_view_obj) bridge.HostView {
	v := bridge.HostView{
		View:          uintptr(obj.view),
		Layer:         uintptr(obj.metal_layer),
		Width:         uint32(obj.width),
		Height:        uint32(obj.height),
		ScaleFactor:   float32(obj.scale_factor),
		MaximumFrames: int32(obj.maximum_frames),
		Callback:      uintptr(unsafe.Pointer(obj.callback_to_app)),
	}
	if obj.platform != nil {
		v.Platform = C.GoString(obj.platform)
	}
	return v
}

//export create_wgpu_canvas
func create_wgpu_canvas(obj C.inapp_view_obj) C.uintptr_t {
	return C.uintptr_t(bridge.CreateHostCanvas(hostView(obj)))
}

//export enter_frame
func enter_frame(h C.uintptr_t) {
	bridge.EnterFrame(bridge.Handle(h))
}

//export resize_wgpu_canvas
func resize_wgpu_canvas(h C.uintptr_t, width, height C.uint32_t) {
	bridge.Resize(bridge.Handle(h), uint32(width), uint32(height))
}

//export change_example
func change_example(h C.uintptr_t, selector C.int32_t) {
	bridge.SwitchRoutine(bridge.Handle(h), int32(selector))
}

//export drop_wgpu_canvas
func drop_wgpu_canvas(h C.uintptr_t) {
	bridge.DestroyCanvas(bridge.Handle(h))
}

func main() {}
