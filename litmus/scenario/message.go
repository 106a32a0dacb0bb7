// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"github.com/kolkov/litmus/litmus"
	"github.com/kolkov/litmus/mem"
	"github.com/kolkov/litmus/rcu"
)

// stale is the message-passing outcome "flag seen, data not".
func stale(o litmus.Outcome) bool {
	return o.Regs[0] == 1 && o.Regs[1] == 0
}

// MP is plain message passing.
//
//	P0          | P1
//	buf = 1     | r0 = flag
//	flag = 1    | r1 = buf
//
// Allowed and interesting: 1:r0=1 ∧ 1:r1=0. Weak hardware may reorder
// either pair; TSO never does.
func MP() *litmus.Test {
	return &litmus.Test{
		Name:      "MP",
		Doc:       "message passing with relaxed accesses only",
		Registers: []string{"1:r0", "1:r1"},
		New: func() []litmus.Thread {
			var buf, flag mem.Cell
			return []litmus.Thread{
				func(*litmus.Outcome) {
					buf.WriteOnce(1)
					flag.WriteOnce(1)
				},
				func(o *litmus.Outcome) {
					o.Regs[0] = flag.ReadOnce()
					o.Regs[1] = buf.ReadOnce()
				},
			}
		},
		Interesting: stale,
	}
}

// MPReleaseFence is message passing with a release store on the writer
// and a fence on the reader, the load-acquire substitute.
//
//	P0               | P1
//	buf = 1          | r0 = flag
//	release(flag, 1) | fence
//	                 | r1 = buf
//
// Forbidden: 1:r0=1 ∧ 1:r1=0.
func MPReleaseFence() *litmus.Test {
	return &litmus.Test{
		Name:      "MP+rel+fence",
		Doc:       "message passing with a release store and a reader fence",
		Registers: []string{"1:r0", "1:r1"},
		New: func() []litmus.Thread {
			var buf, flag mem.Cell
			return []litmus.Thread{
				func(*litmus.Outcome) {
					buf.WriteOnce(1)
					mem.ReleaseStore(&flag, 1)
				},
				func(o *litmus.Outcome) {
					o.Regs[0] = flag.ReadOnce()
					mem.Fence()
					o.Regs[1] = buf.ReadOnce()
				},
			}
		},
		Forbidden: stale,
	}
}

// payload is the object published by MPRCU.
type payload struct {
	marker uintptr
}

// MPRCU is message passing through an RCU pointer.
//
//	P0                   | P1
//	obj.marker = 1       | p = dereference(ptr)
//	publish(ptr, obj)    | r0 = (p != nil)
//	                     | if p != nil: r1 = p.marker
//
// Forbidden: 1:r0=1 ∧ 1:r1=0. The address dependency from the pointer
// load to the marker load orders them without a read-side fence.
func MPRCU() *litmus.Test {
	return &litmus.Test{
		Name:      "MP+rcu",
		Doc:       "publish/dereference through an RCU pointer",
		Registers: []string{"1:r0", "1:r1"},
		New: func() []litmus.Thread {
			ptr := rcu.New[payload]()
			return []litmus.Thread{
				func(*litmus.Outcome) {
					var obj payload
					obj.marker = 1
					ptr.Publish(obj)
				},
				func(o *litmus.Outcome) {
					if p := ptr.Dereference(); p != nil {
						o.Regs[0] = 1
						o.Regs[1] = p.marker
					}
				},
			}
		},
		Forbidden: stale,
	}
}
