// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

const (
	// Name is the target these encodings were built for.
	Name = "arm64"

	// Ordering names the hardware memory model of the target.
	Ordering = "weak"

	// WeaklyOrdered reports whether the hardware may reorder a store
	// with a later store, or a load with a later load.
	WeaklyOrdered = true

	// FenceEncoding is the instruction emitted by Fence.
	FenceEncoding = "DMB ISH"

	// ReleaseEncoding is the instruction emitted by StoreRelease.
	ReleaseEncoding = "STLR"
)
