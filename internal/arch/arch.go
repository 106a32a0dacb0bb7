// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64

package arch

import "unsafe"

// Load performs exactly one word-sized load of *addr with no ordering
// beyond per-location coherence.
//
//go:noescape
func Load(addr *uintptr) uintptr

// Store performs exactly one word-sized store to *addr with no ordering
// beyond per-location coherence.
//
//go:noescape
func Store(addr *uintptr, val uintptr)

// StoreRelease stores val to *addr after every earlier load and store
// of the calling thread.
//
//go:noescape
func StoreRelease(addr *uintptr, val uintptr)

// Fence is a full two-way memory barrier.
func Fence()

// LoadPointer is Load for a pointer slot.
//
// NO go:noescape annotation; *addr escapes if the result escapes.
func LoadPointer(addr *unsafe.Pointer) unsafe.Pointer

// StoreReleasePointer is StoreRelease for a pointer slot. It bypasses
// the garbage collector's write barrier, so val must be kept reachable
// by other means for as long as it may be loaded from *addr.
//
// NO go:noescape annotation; val escapes into *addr.
func StoreReleasePointer(addr *unsafe.Pointer, val unsafe.Pointer)

// Relax hints to the CPU that the caller is spinning.
func Relax()
