// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package litmus

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxRegisters is the number of observations one execution can record.
const MaxRegisters = 4

// Outcome is the result tuple of one execution: the values observed by
// all threads, in register order.
//
// Outcome is comparable and used directly as a histogram key.
type Outcome struct {
	Regs [MaxRegisters]uintptr
}

// Thread is the body of one litmus thread. It records its observations
// in its own registers of o and must not touch other threads' registers.
type Thread func(o *Outcome)

// Test describes a litmus test.
type Test struct {
	// Name identifies the test (e.g. "MP+rcu").
	Name string

	// Doc is a one-line description.
	Doc string

	// Registers names the observed values, e.g. "1:r0" for register r0
	// of thread 1. Register i is Outcome.Regs[i].
	Registers []string

	// New builds fresh shared state for one execution and returns one
	// body per thread. It runs on the coordinating goroutine.
	New func() []Thread

	// Forbidden reports whether the memory model forbids an outcome.
	// nil means every outcome is allowed.
	Forbidden func(Outcome) bool

	// Interesting reports whether an allowed outcome is one that only
	// weakly ordered hardware produces. nil means none is.
	Interesting func(Outcome) bool
}

// Format renders o using the test's register names.
//
// Format: "1:r0=1; 1:r1=0".
func (t *Test) Format(o Outcome) string {
	var b strings.Builder
	for i, name := range t.Registers {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatUint(uint64(o.Regs[i]), 10))
	}
	return b.String()
}

func (t *Test) isForbidden(o Outcome) bool {
	return t.Forbidden != nil && t.Forbidden(o)
}

func (t *Test) isInteresting(o Outcome) bool {
	return t.Interesting != nil && t.Interesting(o)
}

// validate checks the static shape of the test and the bodies built
// for the first execution.
func (t *Test) validate(threads []Thread) error {
	if t.New == nil || len(threads) == 0 {
		return &TestError{Test: t.Name, Err: ErrNoThreads}
	}
	if len(t.Registers) > MaxRegisters {
		return &TestError{Test: t.Name, Err: ErrTooManyRegisters}
	}
	return t.checkBodies(threads, len(threads))
}

// checkBodies checks the bodies New built for one execution: there must
// be n of them and none may be nil.
func (t *Test) checkBodies(threads []Thread, n int) error {
	if len(threads) != n {
		return &TestError{Test: t.Name, Err: fmt.Errorf("%w: got %d, want %d", ErrThreadCount, len(threads), n)}
	}
	for i, th := range threads {
		if th == nil {
			return &TestError{Test: t.Name, Err: ErrNilThread, Thread: i}
		}
	}
	return nil
}
