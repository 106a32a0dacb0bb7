// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mem provides the smallest set of shared-memory primitives
// needed to write litmus tests against a relaxed memory model.
//
// # Quick Start
//
//	var buf, flag mem.Cell
//
//	// Writer
//	buf.WriteOnce(42)
//	mem.ReleaseStore(&flag, 1)
//
//	// Reader
//	if flag.ReadOnce() == 1 {
//		mem.Fence()
//		_ = buf.ReadOnce() // 42
//	}
//
// # API Overview
//
// The package provides:
//   - Relaxed word accesses: [Cell.ReadOnce], [Cell.WriteOnce]
//   - A full two-way barrier: [Fence]
//   - A one-way release store: [ReleaseStore]
//   - Build information: [GetInfo], [Version]
//
// The publish/dereference half of RCU lives in package rcu.
//
// # Ordering Guarantees
//
// ReadOnce and WriteOnce are relaxed: each is a single, untorn machine
// word access that the compiler will not split, elide, cache in a
// register or move across another primitive of this package. The
// hardware orders them only per location (coherence). Two ReadOnce
// calls on the same Cell never observe values going backwards in that
// Cell's modification order; accesses to different Cells carry no
// ordering at all.
//
// Fence orders every access before it against every access after it,
// as seen by other threads. It makes nothing visible by itself.
//
// ReleaseStore is a WriteOnce that is ordered after every earlier access
// of the calling thread. It does not order later accesses, which makes
// it weaker and cheaper than Fence followed by WriteOnce.
//
// Nothing here is sequentially consistent. Stronger guarantees come
// from composing primitives, e.g. ReadOnce followed by Fence as a
// load-acquire substitute.
//
// # Architecture Selection
//
// The encodings are picked at build time and intentionally not hidden:
//
//	amd64: Fence = MFENCE,  ReleaseStore = MOVQ (TSO)
//	arm64: Fence = DMB ISH, ReleaseStore = STLR
//
// Other targets fail to build. [GetInfo] reports the encodings compiled
// into the running binary.
//
// # Go Memory Model
//
// These accesses are deliberately outside the Go memory model: they are
// not sync/atomic operations and the Go race detector does not see
// them. Use them to observe the hardware, not to synchronize programs.
package mem
