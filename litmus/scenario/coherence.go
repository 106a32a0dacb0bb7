// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"github.com/kolkov/litmus/litmus"
	"github.com/kolkov/litmus/mem"
)

// CoRR is read-read coherence.
//
//	P0          | P1
//	x = 1       | r0 = x
//	            | r1 = x
//
// Forbidden: 1:r0=1 ∧ 1:r1=0. Once a thread has seen the new value it
// can not see the old one again.
func CoRR() *litmus.Test {
	return &litmus.Test{
		Name:      "CoRR",
		Doc:       "read-read coherence on one cell",
		Registers: []string{"1:r0", "1:r1"},
		New: func() []litmus.Thread {
			x := mem.NewCell(0)
			return []litmus.Thread{
				func(*litmus.Outcome) {
					x.WriteOnce(1)
				},
				func(o *litmus.Outcome) {
					o.Regs[0] = x.ReadOnce()
					o.Regs[1] = x.ReadOnce()
				},
			}
		},
		Forbidden: func(o litmus.Outcome) bool {
			return o.Regs[0] == 1 && o.Regs[1] == 0
		},
	}
}

// CoRR4 extends CoRR to a sequence of writes.
//
//	P0          | P1
//	x = 1       | r0 = x
//	x = 2       | r1 = x
//	x = 3       | r2 = x
//	            | r3 = x
//
// Forbidden: any read returning a value never written (>3) or a value
// older than an earlier read.
func CoRR4() *litmus.Test {
	return &litmus.Test{
		Name:      "CoRR4",
		Doc:       "coherence over three writes and four reads",
		Registers: []string{"1:r0", "1:r1", "1:r2", "1:r3"},
		New: func() []litmus.Thread {
			x := mem.NewCell(0)
			return []litmus.Thread{
				func(*litmus.Outcome) {
					x.WriteOnce(1)
					x.WriteOnce(2)
					x.WriteOnce(3)
				},
				func(o *litmus.Outcome) {
					o.Regs[0] = x.ReadOnce()
					o.Regs[1] = x.ReadOnce()
					o.Regs[2] = x.ReadOnce()
					o.Regs[3] = x.ReadOnce()
				},
			}
		},
		Forbidden: func(o litmus.Outcome) bool {
			for i, v := range o.Regs {
				if v > 3 {
					return true
				}
				if i > 0 && v < o.Regs[i-1] {
					return true
				}
			}
			return false
		},
	}
}
