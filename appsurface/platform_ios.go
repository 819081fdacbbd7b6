// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build ios

package appsurface

// detectDarwinPlatform returns iOS when built with the ios tag.
func detectDarwinPlatform() Platform {
	return PlatformIOS
}
