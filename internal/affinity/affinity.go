// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affinity pins the calling OS thread to a CPU.
//
// Litmus threads that share a core interleave rather than run in
// parallel, which hides most reorderings. Pinning each thread to its
// own CPU makes weak outcomes far more likely to show up.
//
// The caller must have called runtime.LockOSThread first; otherwise the
// goroutine may migrate to another, unpinned thread.
package affinity

import (
	"errors"
	"runtime"
)

// ErrUnsupported is returned by Pin on platforms without thread
// affinity.
var ErrUnsupported = errors.New("affinity: thread pinning not supported on " + runtime.GOOS)

// ErrNoCPUs is returned by Allowed when the affinity mask is empty.
var ErrNoCPUs = errors.New("affinity: no cpus allowed")

// CPUFor spreads thread indexes over allowed, the CPU IDs returned by
// Allowed. Thread i gets allowed[(i+1) % len(allowed)], so consecutive
// threads land on distinct CPUs whenever more than one is allowed, and
// the first allowed CPU is used last. allowed must not be empty.
func CPUFor(allowed []int, thread int) int {
	return allowed[(thread+1)%len(allowed)]
}
