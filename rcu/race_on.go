// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build race

package rcu

import (
	"runtime"
	"unsafe"
)

// The slot is accessed from assembly, which the race detector does not
// instrument. These annotations give it the release/acquire edge that
// the hardware provides.

func raceRelease(addr unsafe.Pointer) {
	runtime.RaceReleaseMerge(addr)
}

func raceAcquire(addr unsafe.Pointer) {
	runtime.RaceAcquire(addr)
}
