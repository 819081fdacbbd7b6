// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package appsurface

import "runtime"

// Platform identifies the host that supplied a native view.
type Platform string

const (
	PlatformIOS      Platform = "ios"
	PlatformAndroid  Platform = "android"
	PlatformMacOS    Platform = "darwin"
	PlatformLinux    Platform = "linux"
	PlatformWindows  Platform = "windows"
	PlatformHeadless Platform = "headless"
)

// CurrentPlatform returns the platform the process is running on.
// Unknown systems report PlatformHeadless.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin", "ios":
		return detectDarwinPlatform()
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformHeadless
	}
}

// IsMobile reports whether p hosts views through a native mobile toolkit.
func (p Platform) IsMobile() bool {
	return p == PlatformIOS || p == PlatformAndroid
}
