// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"testing"

	"github.com/gogpu/inapp/appsurface"
)

func TestHostViewDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		view    HostView
		want    appsurface.ViewDescriptor
		wantErr error
	}{
		{
			name: "ios",
			view: HostView{
				View: 0x1000, Layer: 0x2000, Width: 1170, Height: 2532,
				ScaleFactor: 3, MaximumFrames: 120, Platform: "ios",
			},
			want: appsurface.ViewDescriptor{
				Platform: appsurface.PlatformIOS, View: 0x1000, Layer: 0x2000,
				Width: 1170, Height: 2532, ScaleFactor: 3, MaximumFrames: 120,
			},
		},
		{
			name: "android defaults",
			view: HostView{View: 0x3000, Width: 1080, Height: 2400, Platform: "android"},
			want: appsurface.ViewDescriptor{
				Platform: appsurface.PlatformAndroid, View: 0x3000,
				Width: 1080, Height: 2400, ScaleFactor: 1, MaximumFrames: appsurface.DefaultMaximumFrames,
			},
		},
		{
			name: "headless",
			view: HostView{Width: 64, Height: 32, Platform: "headless"},
			want: appsurface.ViewDescriptor{
				Platform: appsurface.PlatformHeadless,
				Width:    64, Height: 32, ScaleFactor: 1, MaximumFrames: appsurface.DefaultMaximumFrames,
			},
		},
		{
			name:    "ios without layer",
			view:    HostView{View: 0x1000, Width: 10, Height: 10, Platform: "ios"},
			wantErr: appsurface.ErrMissingLayer,
		},
		{
			name:    "android without view",
			view:    HostView{Width: 10, Height: 10, Platform: "android"},
			wantErr: appsurface.ErrMissingView,
		},
		{
			name:    "zero height",
			view:    HostView{Width: 10, Platform: "headless"},
			wantErr: appsurface.ErrInvalidDimensions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.view.Descriptor()
			err := d.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if *d != tt.want {
				t.Errorf("Descriptor() = %+v, want %+v", *d, tt.want)
			}
		})
	}
}

func TestHostViewEmptyPlatform(t *testing.T) {
	d := HostView{Width: 10, Height: 10}.Descriptor()
	if d.Platform != "" {
		t.Fatalf("Platform = %q, want empty before Validate", d.Platform)
	}
	_ = d.Validate()
	if d.Platform != appsurface.CurrentPlatform() {
		t.Errorf("Platform = %q after Validate, want %q", d.Platform, appsurface.CurrentPlatform())
	}
}

func TestHostViewNoCallback(t *testing.T) {
	if (HostView{}).Notifier() != nil {
		t.Error("Notifier() with a null callback should be nil")
	}
}

func TestCreateHostCanvas(t *testing.T) {
	b, opened := testBridge(t)

	h := b.CreateHostCanvas(HostView{Width: 320, Height: 240, Platform: "headless"})
	if h == 0 {
		t.Fatal("CreateHostCanvas() = 0")
	}
	defer b.DestroyCanvas(h)

	if cfg := (*opened)[0].Config(); cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}

	if h := b.CreateHostCanvas(HostView{Width: 10, Height: 10, Platform: "android"}); h != 0 {
		t.Errorf("CreateHostCanvas() without a view = %d, want 0", h)
	}
}
