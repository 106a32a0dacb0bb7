// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import "github.com/kolkov/litmus/internal/arch"

// Version information for the litmus primitives.
const (
	// Version is the current version of the primitives.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the encodings compiled into the running binary.
type Info struct {
	// Version is the primitives version string.
	Version string

	// Arch is the GOARCH the encodings were selected for.
	Arch string

	// Ordering is the hardware memory model: "TSO" or "weak".
	Ordering string

	// WeaklyOrdered reports whether the hardware may reorder
	// independent accesses to different locations.
	WeaklyOrdered bool

	// FenceEncoding is the instruction behind Fence.
	FenceEncoding string

	// ReleaseEncoding is the instruction behind ReleaseStore.
	ReleaseEncoding string
}

// GetInfo returns the build information of the primitives.
//
// Example:
//
//	info := mem.GetInfo()
//	fmt.Printf("%s: fence=%s release=%s\n", info.Arch, info.FenceEncoding, info.ReleaseEncoding)
func GetInfo() Info {
	return Info{
		Version:         Version,
		Arch:            arch.Name,
		Ordering:        arch.Ordering,
		WeaklyOrdered:   arch.WeaklyOrdered,
		FenceEncoding:   arch.FenceEncoding,
		ReleaseEncoding: arch.ReleaseEncoding,
	}
}
