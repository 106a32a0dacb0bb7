// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import "github.com/kolkov/litmus/internal/arch"

// Cell is one machine word shared between threads with no higher-level
// synchronization.
//
// The zero value is a Cell holding 0. A Cell must not be copied after
// first use; share it by pointer.
//
// Thread Safety: any number of goroutines may call ReadOnce, WriteOnce
// and ReleaseStore concurrently. The only ordering is per-location
// coherence.
type Cell struct {
	_ noCopy
	v uintptr
}

// NewCell returns a Cell holding v.
//
// Construction is single-threaded; publish the Cell to other goroutines
// the usual way (channel send, go statement, WaitGroup).
func NewCell(v uintptr) *Cell {
	return &Cell{v: v}
}

// ReadOnce performs exactly one relaxed load of the Cell.
//
// The result is some value written to this Cell (or its initial value).
// A later ReadOnce on the same goroutine never returns a value that is
// older in the Cell's modification order.
func (c *Cell) ReadOnce() uintptr {
	return arch.Load(&c.v)
}

// WriteOnce performs exactly one relaxed store of v into the Cell.
//
// It orders nothing else: other threads may observe it before or after
// this thread's surrounding accesses to other Cells.
func (c *Cell) WriteOnce(v uintptr) {
	arch.Store(&c.v, v)
}

// ReleaseStore writes v into c after every earlier load and store of
// the calling thread.
//
// A thread that reads v from c and then orders its later accesses (by
// Fence, or by an address dependency as in rcu.Pointer) observes every
// write this thread made before the call.
//
// Example:
//
//	data.WriteOnce(1)
//	mem.ReleaseStore(&ready, 1) // data=1 is visible to whoever sees ready=1
func ReleaseStore(c *Cell, v uintptr) {
	arch.StoreRelease(&c.v, v)
}

// noCopy may be embedded into structs which must not be copied after
// first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
