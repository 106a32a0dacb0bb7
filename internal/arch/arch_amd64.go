// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

const (
	// Name is the target these encodings were built for.
	Name = "amd64"

	// Ordering names the hardware memory model of the target.
	Ordering = "TSO"

	// WeaklyOrdered reports whether the hardware may reorder a store
	// with a later store, or a load with a later load.
	WeaklyOrdered = false

	// FenceEncoding is the instruction emitted by Fence.
	FenceEncoding = "MFENCE"

	// ReleaseEncoding is the instruction emitted by StoreRelease.
	// x86-TSO never reorders a store with earlier loads or stores, so
	// a plain store behind a compiler barrier is already a release.
	ReleaseEncoding = "MOVQ"
)
