// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package litmus

import (
	"errors"
	"fmt"
)

// Errors returned by Run for malformed tests or configurations.
var (
	ErrNoThreads        = errors.New("litmus: test has no threads")
	ErrNilThread        = errors.New("litmus: thread body is nil")
	ErrThreadCount      = errors.New("litmus: New returned a different number of threads")
	ErrTooManyRegisters = fmt.Errorf("litmus: test has more than %d registers", MaxRegisters)
	ErrBadIterations    = errors.New("litmus: iterations must be positive")
)

// TestError reports a malformed test.
type TestError struct {
	Test   string // Test name
	Thread int    // Offending thread index, for ErrNilThread
	Err    error  // One of the Err* sentinels
}

// Error implements the error interface.
func (e *TestError) Error() string {
	if errors.Is(e.Err, ErrNilThread) {
		return fmt.Sprintf("%s: thread %d: %v", e.Test, e.Thread, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Test, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *TestError) Unwrap() error {
	return e.Err
}

// ForbiddenOutcomeError reports that a run observed an outcome the
// memory model forbids.
//
// This is a correctness violation of the primitives, not an operational
// failure: the offending test should fail with this message, not retry.
//
// Example output:
//
//	litmus: CoRR: forbidden outcome 1:r0=1; 1:r1=0 observed 3 times in 10000 iterations
type ForbiddenOutcomeError struct {
	Test       string // Test name
	Outcome    string // Formatted outcome
	Count      int    // How often it was observed
	Iterations int    // Iterations in the run
}

// Error implements the error interface.
func (e *ForbiddenOutcomeError) Error() string {
	return fmt.Sprintf("litmus: %s: forbidden outcome %s observed %d times in %d iterations",
		e.Test, e.Outcome, e.Count, e.Iterations)
}
