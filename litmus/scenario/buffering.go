// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"github.com/kolkov/litmus/litmus"
	"github.com/kolkov/litmus/mem"
)

// bothOne is the outcome where each thread saw the other's write.
func bothOne(o litmus.Outcome) bool {
	return o.Regs[0] == 1 && o.Regs[1] == 1
}

// bothZero is the outcome where neither thread saw the other's write.
func bothZero(o litmus.Outcome) bool {
	return o.Regs[0] == 0 && o.Regs[1] == 0
}

// LBFence is load buffering with a control dependency on one side and a
// fence on the other.
//
//	P0              | P1
//	r0 = x          | r1 = y
//	if r0 != 0:     | fence
//	    y = 1       | x = 1
//
// Forbidden: 0:r0=1 ∧ 1:r1=1. P0's store depends on its load; P1's
// store is ordered after its load by the fence.
func LBFence() *litmus.Test {
	return &litmus.Test{
		Name:      "LB+fence",
		Doc:       "load buffering, control dependency vs. fence",
		Registers: []string{"0:r0", "1:r1"},
		New: func() []litmus.Thread {
			var x, y mem.Cell
			return []litmus.Thread{
				func(o *litmus.Outcome) {
					o.Regs[0] = x.ReadOnce()
					if o.Regs[0] != 0 {
						y.WriteOnce(1)
					}
				},
				func(o *litmus.Outcome) {
					o.Regs[1] = y.ReadOnce()
					mem.Fence()
					x.WriteOnce(1)
				},
			}
		},
		Forbidden: bothOne,
	}
}

// SB is plain store buffering.
//
//	P0          | P1
//	x = 1       | y = 1
//	r0 = y      | r1 = x
//
// Allowed and interesting: 0:r0=0 ∧ 1:r1=0. Store buffers delay each
// write past the other thread's read; this shows up on TSO as well.
func SB() *litmus.Test {
	return &litmus.Test{
		Name:      "SB",
		Doc:       "store buffering with relaxed accesses only",
		Registers: []string{"0:r0", "1:r1"},
		New: func() []litmus.Thread {
			var x, y mem.Cell
			return []litmus.Thread{
				func(o *litmus.Outcome) {
					x.WriteOnce(1)
					o.Regs[0] = y.ReadOnce()
				},
				func(o *litmus.Outcome) {
					y.WriteOnce(1)
					o.Regs[1] = x.ReadOnce()
				},
			}
		},
		Interesting: bothZero,
	}
}

// SBFences is store buffering with a fence between each store and load.
//
//	P0          | P1
//	x = 1       | y = 1
//	fence       | fence
//	r0 = y      | r1 = x
//
// Forbidden: 0:r0=0 ∧ 1:r1=0. A release store would not be enough here:
// only a full fence orders a store before a later load.
func SBFences() *litmus.Test {
	return &litmus.Test{
		Name:      "SB+fences",
		Doc:       "store buffering with full fences",
		Registers: []string{"0:r0", "1:r1"},
		New: func() []litmus.Thread {
			var x, y mem.Cell
			return []litmus.Thread{
				func(o *litmus.Outcome) {
					x.WriteOnce(1)
					mem.Fence()
					o.Regs[0] = y.ReadOnce()
				},
				func(o *litmus.Outcome) {
					y.WriteOnce(1)
					mem.Fence()
					o.Regs[1] = x.ReadOnce()
				},
			}
		},
		Forbidden: bothZero,
	}
}
