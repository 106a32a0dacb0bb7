// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package litmus runs litmus tests: small concurrent programs whose
// legal joint outcomes are fixed by a memory model.
//
// A [Test] builds fresh shared state for every execution and returns one
// [Thread] body per participating thread. [Run] executes the bodies
// concurrently many times and counts how often each [Outcome] (the
// tuple of values the threads observed) occurs.
//
// # Quick Start
//
//	corr := &litmus.Test{
//		Name:      "CoRR",
//		Registers: []string{"1:r0", "1:r1"},
//		New: func() []litmus.Thread {
//			x := mem.NewCell(0)
//			return []litmus.Thread{
//				func(*litmus.Outcome) { x.WriteOnce(1) },
//				func(o *litmus.Outcome) {
//					o.Regs[0] = x.ReadOnce()
//					o.Regs[1] = x.ReadOnce()
//				},
//			}
//		},
//		Forbidden: func(o litmus.Outcome) bool { return o.Regs[0] == 1 && o.Regs[1] == 0 },
//	}
//
//	res, err := litmus.Run(ctx, corr, litmus.DefaultConfig())
//	if err != nil { ... }
//	if err := res.Err(); err != nil {
//		// a forbidden outcome was observed
//	}
//
// # Execution Model
//
// Each thread body runs on its own goroutine, locked to an OS thread
// and optionally pinned to its own CPU. The goroutines live for the
// whole Run; before each iteration they spin on a shared generation
// counter so that the bodies start as close together as possible.
//
// # Interpreting Results
//
// A forbidden outcome is a violation of the modeled memory model. It is
// reported through [Result.Err] as a [*ForbiddenOutcomeError] and must
// not be retried away. An interesting outcome is one the model allows
// but that only weak hardware produces; seeing it proves the primitives
// are not over-fenced, not seeing it proves nothing.
package litmus
