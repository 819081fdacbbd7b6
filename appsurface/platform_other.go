// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !ios

package appsurface

// detectDarwinPlatform returns macOS on darwin builds without the ios tag.
func detectDarwinPlatform() Platform {
	return PlatformMacOS
}
